package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlgChineseBack.json")

	s := Store{
		"A": {
			UniqueID:    "test.a",
			Name:        strptr("原版名称"),
			Description: strptr("描述文本"),
			Path:        "A",
			IsChinese:   boolptr(true),
			Nurl:        strptr("https://www.nexusmods.com/stardewvalley/mods/1234"),
		},
		"B/nested": {
			UniqueID:  "test.b",
			Name:      strptr("Plain Mod"),
			Path:      "B/nested",
			IsChinese: boolptr(false),
		},
	}

	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	a := loaded["A"]
	require.Equal(t, "test.a", a.UniqueID)
	require.Equal(t, "原版名称", *a.Name)
	require.Equal(t, "描述文本", *a.Description)
	require.NotNil(t, a.IsChinese)
	require.True(t, *a.IsChinese)
	require.Equal(t, "https://www.nexusmods.com/stardewvalley/mods/1234", *a.Nurl)

	b := loaded["B/nested"]
	require.Nil(t, b.Description)
	require.Nil(t, b.Nurl)
	require.False(t, *b.IsChinese)
}

func TestStore_LoadLegacyFileWithoutIsChinese(t *testing.T) {
	// Store files written before the IsChinese flag existed must still
	// load, leaving the flag nil so restore rechecks the values.
	legacy := `{
  "A": {
    "UniqueID": "test.a",
    "Name": "旧名称",
    "Description": null,
    "Path": "A",
    "Nurl": null
  }
}`
	path := filepath.Join(t.TempDir(), "xlgChineseBack.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	a := loaded["A"]
	require.Nil(t, a.IsChinese)
	require.Equal(t, "旧名称", *a.Name)
	require.Nil(t, a.Description)
}

func TestStore_LoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
}

func TestStore_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)

	require.Error(t, err)
}

func TestStore_SaveKeepsChineseUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := Store{"A": {UniqueID: "test.a", Name: strptr("测试"), Path: "A", IsChinese: boolptr(true)}}

	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "测试")
}
