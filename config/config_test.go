package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/mascpcr/masc/primercandidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	expect.EQ(t, c.Opts(), primercandidate.DefaultOpts)
	cond, err := c.Conditions()
	require.NoError(t, err)
	assert.InEpsilon(t, 0.05, cond.NaM, 1e-9)
	assert.InEpsilon(t, 250e-9, cond.PrimerM, 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masc.yaml")
	body := `
primer:
  tm-min: 58
  max-size: 25
  lenient-mode: true
thermo:
  na: 100mM
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	opts := c.Opts()
	expect.EQ(t, opts.TmMin, 58.0)
	expect.EQ(t, opts.MaxSize, 25)
	expect.True(t, opts.LenientMode)
	// untouched fields keep defaults
	expect.EQ(t, opts.TmMax, primercandidate.DefaultOpts.TmMax)
	cond, err := c.Conditions()
	require.NoError(t, err)
	assert.InEpsilon(t, 0.1, cond.NaM, 1e-9)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masc.yaml")
	body := `
primer:
  min-size: 40
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
