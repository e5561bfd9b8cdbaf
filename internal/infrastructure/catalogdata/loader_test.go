package catalogdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lpu_quotation/internal/domain/catalog"

	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	c, err := Load()
	require.NoError(t, err)

	require.Len(t, c.Entries(), 28)
	require.Len(t, c.Groups(), 1)
	require.Len(t, c.Leaves(), 23)
	require.Len(t, c.LeavesOf("1.4"), 8)

	e, ok := c.Get("1.1.2")
	require.True(t, ok)
	require.Equal(t, "m²", e.Unit)
	require.Contains(t, e.Description, `"as built"`)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,description,unit,kind\n2,Civil,,group\n2.1,Piso,m²,item\n"), 0o600))
	t.Setenv("CATALOG_FILE", path)

	c, err := Load()
	require.NoError(t, err)
	require.Len(t, c.Leaves(), 1)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"bad header":   "code,description,unit,kind\n1,A,,group\n",
		"no rows":      "id,description,unit,kind\n",
		"unknown kind": "id,description,unit,kind\n1,A,,section\n",
		"item no unit": "id,description,unit,kind\n1,A,,group\n1.1,B,,item\n",
		"orphan item":  "id,description,unit,kind\n1,A,,group\n2.1,B,vb,item\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			require.Error(t, err)
		})
	}

	_, err := Parse(strings.NewReader("id,description,unit,kind\n1,A,,group\n1,B,,group\n"))
	require.ErrorIs(t, err, catalog.ErrDuplicateEntry)
}
