package di_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/0xalexb/cfgmap"
	"github.com/0xalexb/cfgmap/di"
)

type mockFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

func staticTree() (*cfgmap.Map, error) {
	m := cfgmap.New()
	if _, err := m.Add("defaults", cfgmap.New().Value()); err != nil {
		return nil, err
	}
	if _, err := m.Add("defaults/timeout", cfgmap.Int(30)); err != nil {
		return nil, err
	}
	return m, nil
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	decoder := di.DecoderFunc(func(data []byte) (*cfgmap.Map, error) {
		assert.Equal(t, []byte("raw"), data)
		return staticTree()
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("raw"), nil
		},
	}

	tree, err := di.Provider("defaults/")(decoder, fetcher)
	require.NoError(t, err)
	require.NotNil(t, tree)

	assert.Equal(t, "defaults/", tree.Default)
	assert.True(t, tree.GetOption("http", "timeout").CheckThat(cfgmap.IsExactlyInt(30)))
}

func TestProvider_KeepsDecoderDefaultWhenUnset(t *testing.T) {
	t.Parallel()

	decoder := di.DecoderFunc(func(_ []byte) (*cfgmap.Map, error) {
		return staticTree()
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("raw"), nil
		},
	}

	tree, err := di.Provider("")(decoder, fetcher)
	require.NoError(t, err)
	assert.Empty(t, tree.Default)
}

func TestProvider_FetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")

	decoder := di.DecoderFunc(func(_ []byte) (*cfgmap.Map, error) {
		t.Fatal("decoder must not run when fetching fails")
		return nil, nil
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return nil, fetchErr
		},
	}

	_, err := di.Provider("")(decoder, fetcher)
	require.ErrorIs(t, err, fetchErr)
}

func TestProvider_DecodeError(t *testing.T) {
	t.Parallel()

	decodeErr := errors.New("bad document")

	decoder := di.DecoderFunc(func(_ []byte) (*cfgmap.Map, error) {
		return nil, decodeErr
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("raw"), nil
		},
	}

	_, err := di.Provider("")(decoder, fetcher)
	require.ErrorIs(t, err, decodeErr)
}

func TestNewModule_SuppliesMap(t *testing.T) {
	t.Parallel()

	decoder := di.DecoderFunc(func(_ []byte) (*cfgmap.Map, error) {
		return staticTree()
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("raw"), nil
		},
	}

	var tree *cfgmap.Map

	app := fx.New(
		fx.NopLogger,
		di.NewModule("config",
			di.WithDecoder(decoder),
			di.WithFetcher(fetcher),
			di.WithDefaultPath("defaults/"),
		),
		fx.Invoke(func(m *cfgmap.Map) {
			tree = m
		}),
	)

	require.NoError(t, app.Err())
	require.NotNil(t, tree)
	assert.Equal(t, "defaults/", tree.Default)
}

func TestNewModule_Validation(t *testing.T) {
	t.Parallel()

	decoder := di.DecoderFunc(func(_ []byte) (*cfgmap.Map, error) {
		return cfgmap.New(), nil
	})
	fetcher := &mockFetcher{
		fetchFunc: func() ([]byte, error) {
			return nil, nil
		},
	}

	testCases := []struct {
		name   string
		module fx.Option
		want   error
	}{
		{
			name:   "empty name",
			module: di.NewModule("", di.WithDecoder(decoder), di.WithFetcher(fetcher)),
			want:   di.ErrEmptyName,
		},
		{
			name:   "nil decoder",
			module: di.NewModule("config", di.WithFetcher(fetcher)),
			want:   di.ErrNilDecoder,
		},
		{
			name:   "nil fetcher",
			module: di.NewModule("config", di.WithDecoder(decoder)),
			want:   di.ErrNilFetcher,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := fx.ValidateApp(fx.NopLogger, tc.module)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.want.Error())
		})
	}
}
