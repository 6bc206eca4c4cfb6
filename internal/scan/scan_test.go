package scan

import (
	"os"
	"path/filepath"
	"testing"

	"translation-keeper/internal/config"
	"translation-keeper/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreFile: "xlgChineseBack.json",
		NexusHost: "www.nexusmods.com",
		GameSlug:  "stardewvalley",
	}
}

func writeManifest(t *testing.T, root, rel, content string) {
	t.Helper()
	dir := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(content), 0644))
}

func TestScan_BuildsStoreFromTree(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "A", `{
  "Name": "原版名称",
  "Description": "描述文本",
  "UniqueID": "test.a",
  "UpdateKeys": ["Nexus:1234"]
}`)
	writeManifest(t, root, "B", `{"Name": "Plain Mod", "Description": "A test", "UniqueID": "test.b"}`)

	sum, err := NewScanner(testConfig(), zerolog.Nop()).Run(root)

	require.NoError(t, err)
	require.Equal(t, 2, sum.Found)
	require.Equal(t, 2, sum.Extracted)
	require.Zero(t, sum.NoContent)
	require.Zero(t, sum.Failed)

	st, err := store.Load(filepath.Join(root, "xlgChineseBack.json"))
	require.NoError(t, err)
	require.Len(t, st, 2)

	a := st["A"]
	require.Equal(t, "test.a", a.UniqueID)
	require.Equal(t, "原版名称", *a.Name)
	require.Equal(t, "描述文本", *a.Description)
	require.Equal(t, "A", a.Path)
	require.NotNil(t, a.IsChinese)
	require.True(t, *a.IsChinese)
	require.Equal(t, "https://www.nexusmods.com/stardewvalley/mods/1234", *a.Nurl)

	b := st["B"]
	require.False(t, *b.IsChinese)
	require.Nil(t, b.Nurl)
}

func TestScan_UniqueIDFallsBackToDirectoryName(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "SomeMod", `{"Name": "某模组"}`)

	_, err := NewScanner(testConfig(), zerolog.Nop()).Run(root)
	require.NoError(t, err)

	st, err := store.Load(filepath.Join(root, "xlgChineseBack.json"))
	require.NoError(t, err)
	require.Equal(t, "SomeMod", st["SomeMod"].UniqueID)
}

func TestScan_NoContentManifestExcluded(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "A", `{"Name": "好模组", "UniqueID": "test.a"}`)
	writeManifest(t, root, "Empty", `{"Version": "1.0.0", "UniqueID": "test.empty"}`)

	sum, err := NewScanner(testConfig(), zerolog.Nop()).Run(root)

	require.NoError(t, err)
	require.Equal(t, 1, sum.Extracted)
	require.Equal(t, 1, sum.NoContent)

	st, err := store.Load(filepath.Join(root, "xlgChineseBack.json"))
	require.NoError(t, err)
	require.Len(t, st, 1)
	_, present := st["Empty"]
	require.False(t, present)
}

func TestScan_EmptyTreeWritesNoStore(t *testing.T) {
	root := t.TempDir()

	sum, err := NewScanner(testConfig(), zerolog.Nop()).Run(root)

	require.NoError(t, err)
	require.Zero(t, sum.Extracted)
	_, statErr := os.Stat(filepath.Join(root, "xlgChineseBack.json"))
	require.True(t, os.IsNotExist(statErr))
}

func TestScan_NestedManifestKeyedByRelativePath(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, filepath.Join("pack", "inner"), `{"Name": "嵌套", "UniqueID": "test.nested"}`)

	_, err := NewScanner(testConfig(), zerolog.Nop()).Run(root)
	require.NoError(t, err)

	st, err := store.Load(filepath.Join(root, "xlgChineseBack.json"))
	require.NoError(t, err)

	rec, present := st[filepath.Join("pack", "inner")]
	require.True(t, present)
	require.Equal(t, filepath.Join("pack", "inner"), rec.Path)
}
