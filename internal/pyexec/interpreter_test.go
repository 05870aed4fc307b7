package pyexec

import (
	"testing"

	"github.com/stretchr/testify/require"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
)

func TestParseVersionOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{"plain banner", "Python 3.11.4", "3.11.4", false},
		{"trailing newline", "Python 3.8.10\n", "3.8.10", false},
		{"two component version", "Python 3.9", "3.9", false},
		{"anaconda suffix", "Python 3.10.6 :: Anaconda, Inc.", "3.10.6", false},
		{"garbage", "zsh: command not found", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVersionOutput(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCheckMinimum(t *testing.T) {
	t.Parallel()

	t.Run("accepts versions at or above the minimum", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"3.8", "3.8.0", "3.8.18", "3.11.4", "3.12.0"} {
			require.NoError(t, CheckMinimum(v, "3.8"), "version %s", v)
		}
	})

	t.Run("rejects versions below the minimum", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"3.7.9", "3.6", "2.7.18"} {
			err := CheckMinimum(v, "3.8")
			require.ErrorIs(t, err, cferrors.ErrInterpreterTooOld, "version %s", v)
		}
	})

	t.Run("ordering is version aware, not lexicographic", func(t *testing.T) {
		t.Parallel()
		// "3.10" sorts before "3.8" as a string but is a newer version
		require.NoError(t, CheckMinimum("3.10.0", "3.8"))
	})

	t.Run("reports actual and required versions", func(t *testing.T) {
		t.Parallel()
		err := CheckMinimum("3.7.0", "3.8")
		require.Error(t, err)
		var verr *cferrors.VersionError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "3.7.0", verr.Installed)
		require.Equal(t, "3.8", verr.Required)
	})

	t.Run("rejects unparseable versions", func(t *testing.T) {
		t.Parallel()
		require.Error(t, CheckMinimum("not-a-version", "3.8"))
	})
}
