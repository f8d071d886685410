package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/argstruct/internal/model"
)

const sentenceTmpl = `<Sentence id='ID'>
1	((	NP	<fs af='राम,n,m,sg,3,o,0,0' drel='k1:VGF' name='NP'>
1.1	राम	NNP	<fs af='राम,n,m,sg,3,o,0,0' name='राम'>
1.2	ने	PSP	<fs af='ने,psp,,,,,,' name='ने'>
	))
2	((	NP	<fs af='किताब,n,f,sg,3,d,0,0' drel='k2:VGF' name='NP2'>
2.1	किताब	NN	<fs af='किताब,n,f,sg,3,d,0,0' name='किताब'>
	))
3	((	VGF	<fs af='पढ़,v,f,sg,any,,ई,ई' voicetype='active' name='VGF'>
3.1	पढ़ी	VM	<fs af='पढ़,v,f,sg,any,,ई,ई' name='पढ़ी'>
	))
4	((	NP	<fs af='बच्चा,n,m,sg,3,d,0,0' drel='k1:VGF2' name='NP3'>
4.1	बच्चा	NN	<fs af='बच्चा,n,m,sg,3,d,0,0' name='बच्चा'>
	))
5	((	VGF	<fs af='रो,v,any,any,any,,0,0' voicetype='active' name='VGF2'>
5.1	रो	VM	<fs af='रो,v,any,any,any,,0,0' name='रो'>
5.2	पड़ा	VAUX	<fs af='पड़,v,m,sg,any,,या,या' name='पड़ा'>
	))
</Sentence>
`

// testCorpus writes two corpus files and returns a configuration using them
func testCorpus(t *testing.T) *model.Config {
	t.Helper()
	root := t.TempDir()
	write := func(name string, ids ...string) {
		var b strings.Builder
		b.WriteString("<document>\n")
		for _, id := range ids {
			b.WriteString(strings.Replace(sentenceTmpl, "ID", id, 1))
		}
		b.WriteString("</document>\n")
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	}
	write("news/a.dat", "1", "2")
	write("news/b.dat", "1")

	c := model.DefaultConfig()
	c.Corpus.Root = root
	c.Output.Dir = t.TempDir()
	c.Concurrency.Workers = 2
	return c
}

func writeList(t *testing.T, dir, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644))
	return path
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRunExtract(t *testing.T) {
	c := testCorpus(t)
	var stderr bytes.Buffer

	summary, err := runExtract(context.Background(), c, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 3, summary.Sentences)
	assert.Empty(t, summary.Failed)

	// per file listings: one entry per distinct item and file
	assert.Equal(t, "किताब\nकिताब\n", readOutput(t, c.Output.Dir, "nondomNs.txt"))
	assert.Equal(t, "राम\nराम\n", readOutput(t, c.Output.Dir, "ergNs.txt"))
	assert.Equal(t, "रो\nरो\n", readOutput(t, c.Output.Dir, "intranVs.txt"))

	info := readOutput(t, c.Output.Dir, "ergNs_info.txt")
	aSource := strings.TrimSuffix(filepath.Join(c.Corpus.Root, "news", "a.dat"), ".dat")
	assert.True(t, strings.HasPrefix(info, "राम\n"+aSource+"\tid='2'\n\n"), info)
	assert.Contains(t, stderr.String(), "Found 2 corpus files")
}

func TestRunExtractMissingCorpus(t *testing.T) {
	c := model.DefaultConfig()
	c.Corpus.Root = filepath.Join(t.TempDir(), "missing")
	_, err := runExtract(context.Background(), c, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunAnimacy(t *testing.T) {
	c := testCorpus(t)
	lists := t.TempDir()
	intrans := writeList(t, lists, "intranVs.txt", "रो", "", "सो")
	erg := writeList(t, lists, "ergNs.txt", "राम")
	nondom := writeList(t, lists, "nondomNs.txt", "बच्चा", "किताब")

	summary, err := runAnimacy(context.Background(), c, &bytes.Buffer{}, intrans, erg, nondom)
	require.NoError(t, err)
	// बच्चा is the subject of रो in every sentence
	assert.Equal(t, 3, summary.Counted)
	assert.Equal(t, "रो\t0.0\t3\nसो\tNA\t0\n", readOutput(t, c.Output.Dir, "anim_percents.txt"))
}

func TestRunAnimacyMissingList(t *testing.T) {
	c := testCorpus(t)
	_, err := runAnimacy(context.Background(), c, &bytes.Buffer{}, "nope1", "nope2", "nope3")
	var ioErr *model.IOFailureError
	assert.ErrorAs(t, err, &ioErr)
}

func TestRunLightVerbs(t *testing.T) {
	c := testCorpus(t)
	intrans := writeList(t, t.TempDir(), "intranVs.txt", "रो")

	summary, err := runLightVerbs(context.Background(), c, &bytes.Buffer{}, intrans)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Counted)
	assert.Equal(t, "रो\tपड़:3\n", readOutput(t, c.Output.Dir, "tel_counts"))
	assert.Equal(t, "रो\t0\t0\t0\n", readOutput(t, c.Output.Dir, "tel_percents"))
}

func TestRunInspect(t *testing.T) {
	c := testCorpus(t)
	var out bytes.Buffer
	require.NoError(t, runInspect(c, &out, filepath.Join(c.Corpus.Root, "news", "b.dat"), false))

	yamlOut := out.String()
	assert.Contains(t, yamlOut, "nondom_objects:")
	assert.Contains(t, yamlOut, "- किताब")
	assert.Contains(t, yamlOut, "sentence_id: \"1\"")
	assert.Contains(t, yamlOut, "light_verb: पड़")
}

func TestLoadConfig(t *testing.T) {
	v := viper.New()
	v.Set("corpus.root", "/data/hdtb")
	v.Set("concurrency.workers", 0)
	v.Set("cache.disk_ttl", "1h")

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "/data/hdtb", c.Corpus.Root)
	assert.Equal(t, 1, c.Concurrency.Workers)
	assert.Equal(t, "1h0m0s", c.Cache.DiskTTL.String())
	assert.Equal(t, ".", c.Output.Dir)
}
