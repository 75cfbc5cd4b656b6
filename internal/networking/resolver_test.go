package networking

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestResolver_Mode(t *testing.T) {
	cases := map[string]struct {
		value       string
		sourceErr   error
		expect      Mode
		expectError string
	}{
		"should default to cni": {
			value:  "",
			expect: NetworkingCNI,
		},
		"should accept cni": {
			value:  "cni",
			expect: NetworkingCNI,
		},
		"should reject unsupported mode": {
			value:       "docker",
			expectError: `"ST_NETWORKING" is set to "docker"`,
		},
		"should report source error": {
			sourceErr:   errors.New("boom"),
			expectError: "failed to read networking mode: boom",
		},
	}

	for n, c := range cases {
		t.Run(n, func(t *testing.T) {
			r := NewResolver(zerolog.Nop(), func() (string, error) {
				return c.value, c.sourceErr
			})

			got, err := r.Mode()
			if c.expectError != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), c.expectError)
				require.Empty(t, got)
				require.Panics(t, func() {
					r.MustMode()
				})
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.expect, got)
			require.Equal(t, c.expect, r.MustMode())
		})
	}
}

func TestResolver_ModeIsCached(t *testing.T) {
	value := "cni"
	calls := 0
	r := NewResolver(zerolog.Nop(), func() (string, error) {
		calls++
		return value, nil
	})

	first, err := r.Mode()
	require.NoError(t, err)

	value = "docker"
	second, err := r.Mode()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
}

func TestResolver_ErrorIsCached(t *testing.T) {
	value := "bridge"
	calls := 0
	r := NewResolver(zerolog.Nop(), func() (string, error) {
		calls++
		return value, nil
	})

	_, err := r.Mode()
	require.ErrorIs(t, err, ErrUnsupportedMode)

	value = "cni"
	_, err = r.Mode()
	require.ErrorIs(t, err, ErrUnsupportedMode)
	require.Equal(t, 1, calls)
}

func TestResolver_ConcurrentMode(t *testing.T) {
	r := NewResolver(zerolog.Nop(), StaticSource("cni"))

	results := make([]Mode, 8)
	errs := make([]error, len(results))
	wg := new(sync.WaitGroup)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Mode()
		}(i)
	}

	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, NetworkingCNI, results[i])
	}
}

func TestResolvers_AreIndependent(t *testing.T) {
	good := NewResolver(zerolog.Nop(), StaticSource(""))
	bad := NewResolver(zerolog.Nop(), StaticSource("docker"))

	_, err := bad.Mode()
	require.Error(t, err)

	mode, err := good.Mode()
	require.NoError(t, err)
	require.Equal(t, NetworkingCNI, mode)
}

func TestResolver_DoesNotLogReturnedErrors(t *testing.T) {
	cases := map[string]Source{
		"unsupported mode": StaticSource("docker"),
		"source error": func() (string, error) {
			return "", errors.New("boom")
		},
	}

	for n, src := range cases {
		t.Run(n, func(t *testing.T) {
			buf := new(bytes.Buffer)
			r := NewResolver(zerolog.New(buf).Level(zerolog.DebugLevel), src)

			_, err := r.Mode()
			require.Error(t, err)
			require.NotContains(t, buf.String(), `"level":"error"`)
		})
	}
}
