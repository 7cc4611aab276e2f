package combo

import (
	"context"
	"testing"

	"levelcode/core/catalog"
	"levelcode/core/remote"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testManifest = `
modes:
  - id: "2_of_3"
    display_name: "Pick two"
    file: db/multi_2_of_3.txt
    min_select: 2
    max_select: 2
    pool: ["200134", "200143", "200152"]
  - id: "1_to_3"
    file: db/multi_range.txt
    min_select: 1
    max_select: 3
    pool: ["1", "2", "3"]
  - id: "costume"
    min_select: 1
    max_select: 2
    remote: true
    pool: ["30010082", "30010083"]
`

const testCatalog = `"200134 200143": {"i":"abc","r":5,"e":"def"},
"200143 200152": {
"i":"ghi",
"r":6,
"e":"jkl"},
`

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, keyword string) (*remote.Code, error) {
	args := m.Called(ctx, keyword)
	if code := args.Get(0); code != nil {
		return code.(*remote.Code), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(t *testing.T) (*Service, *mockSearcher) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "db/multi_2_of_3.txt", []byte(testCatalog), 0o644))
	require.NoError(t, afero.WriteFile(fs, "db/multi_range.txt", []byte(`"1": {"i":"one"}`+"\n"+`"1 3": {"i":"one-three"}`), 0o644))

	manifest, err := catalog.ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	cache := catalog.NewCache(catalog.NewFSSource(fs, ""), zap.NewNop())
	searcher := new(mockSearcher)
	names := map[string]string{"200134": "Peashooter", "200143": "Sunflower"}

	return NewService(manifest, names, cache, searcher, zap.NewNop()), searcher
}
