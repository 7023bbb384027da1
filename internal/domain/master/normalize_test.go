package master

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNames(t *testing.T) {
	got := NormalizeNames([]string{" Turning ", "MILLING", "turning", "", "  ", "Drilling"})
	assert.Equal(t, []string{"turning", "milling", "drilling"}, got)
}

func TestNormalizeNames_Empty(t *testing.T) {
	assert.Empty(t, NormalizeNames(nil))
	assert.Empty(t, NormalizeNames([]string{"", "  "}))
}

func TestExplodePairs(t *testing.T) {
	pairs := ExplodePairs(
		[]string{"Flash", "flash", "Short Shot"},
		[]string{"Molding", "QA "},
	)
	assert.Equal(t, []NamePair{
		{Name: "flash", DepartmentName: "molding"},
		{Name: "flash", DepartmentName: "qa"},
		{Name: "short shot", DepartmentName: "molding"},
		{Name: "short shot", DepartmentName: "qa"},
	}, pairs)
}
