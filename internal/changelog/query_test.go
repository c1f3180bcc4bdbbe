package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVersion(t *testing.T) {
	history := History{
		sampleRelease("v0.2.0", "Second"),
		sampleRelease("v0.1.0", "First"),
	}

	tests := map[string]struct {
		query   string
		want    string
		wantErr bool
	}{
		"exact match":        {query: "v0.2.0", want: "v0.2.0"},
		"without v prefix":   {query: "0.1.0", want: "v0.1.0"},
		"missing version":    {query: "v9.9.9", wantErr: true},
		"whitespace trimmed": {query: " v0.2.0 ", want: "v0.2.0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec, err := history.FindVersion(tc.query)
			if tc.wantErr {
				require.Error(t, err)
				var notFound *VersionNotFoundError
				assert.ErrorAs(t, err, &notFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, rec.Version)
		})
	}
}

func TestContains(t *testing.T) {
	history := History{sampleRelease("v0.1.0", "First")}
	assert.True(t, history.Contains("0.1.0"))
	assert.False(t, history.Contains("v0.2.0"))
}

func TestLatest(t *testing.T) {
	assert.Nil(t, History{}.Latest())

	history := History{
		sampleRelease("v0.2.0", "Second"),
		sampleRelease("v0.1.0", "First"),
	}
	latest := history.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "v0.2.0", latest.Version)
}

func TestVerify(t *testing.T) {
	good := sampleRelease("v0.1.0", "First")

	bad := good
	bad.Version = ""
	bad.Date = "08/30/2026"
	bad.SHA256.Setup = "nothex"

	problems := History{good, bad}.Verify()
	require.Len(t, problems, 3)
	for _, p := range problems {
		assert.Equal(t, 1, p.Index)
	}
}

func TestVerify_CleanHistory(t *testing.T) {
	history := History{sampleRelease("v0.1.0", "First")}
	assert.Empty(t, history.Verify())
}
