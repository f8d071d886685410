package ssf

import (
	"strings"

	"github.com/ppiankov/argstruct/internal/model"
)

func sentence(id string, lines ...string) string {
	head := "<Sentence>"
	if id != "" {
		head = "<Sentence id='" + id + "'>"
	}
	return head + "\n" + strings.Join(lines, "\n") + "\n"
}

func chunk(addr, tag, fs string) string {
	return addr + "\t((\t" + tag + "\t" + fs
}

func token(addr, form, pos, fs string) string {
	return addr + "\t" + form + "\t" + pos + "\t" + fs
}

const closing = "\t))"

func parseText(text string) *Tree {
	return Parse(model.SentenceRecord{SourceID: "test", SentenceID: "1", HasOwnID: true, RawText: text})
}

// transitiveSentence: राम ने किताब पढ़ी (ergative subject, unmarked object)
func transitiveSentence(voice string) string {
	voiceAttr := ""
	if voice != "" {
		voiceAttr = " voicetype='" + voice + "'"
	}
	return sentence("1",
		chunk("1", "NP", "<fs af='राम,n,m,sg,3,o,0,0' head='राम' drel='k1:VGF' name='NP'>"),
		token("1.1", "राम", "NNP", "<fs af='राम,n,m,sg,3,o,0,0' name='राम'>"),
		token("1.2", "ने", "PSP", "<fs af='ने,psp,,,,,,' name='ने'>"),
		closing,
		chunk("2", "NP", "<fs af='किताब,n,f,sg,3,d,0,0' head='किताब' drel='k2:VGF' name='NP2'>"),
		token("2.1", "किताब", "NN", "<fs af='किताब,n,f,sg,3,d,0,0' name='किताब'>"),
		closing,
		chunk("3", "VGF", "<fs af='पढ़,v,f,sg,any,,ई,ई' head='पढ़ी'"+voiceAttr+" name='VGF'>"),
		token("3.1", "पढ़ी", "VM", "<fs af='पढ़,v,f,sg,any,,ई,ई' name='पढ़ी'>"),
		closing,
	)
}

// intransitiveSentence: लड़का सोया (only a k1 argument)
func intransitiveSentence(id string) string {
	return sentence(id,
		chunk("1", "NP", "<fs af='लड़का,n,m,sg,3,d,0,0' head='लड़का' drel='k1:VGF' name='NP'>"),
		token("1.1", "लड़का", "NN", "<fs af='लड़का,n,m,sg,3,d,0,0' name='लड़का'>"),
		closing,
		chunk("2", "VGF", "<fs af='सो,v,m,sg,any,,या,या' head='सोया' voicetype='active' name='VGF'>"),
		token("2.1", "सोया", "VM", "<fs af='सो,v,m,sg,any,,या,या' name='सोया'>"),
		closing,
	)
}

// combinedSentence holds exactly one instance of every pattern:
// an ergative subject and a non-DOM object of VGF, and an intransitive VGF2
func combinedSentence(id string) string {
	return sentence(id,
		chunk("1", "NP", "<fs af='राम,n,m,sg,3,o,0,0' head='राम' drel='k1:VGF' name='NP'>"),
		token("1.1", "राम", "NNP", "<fs af='राम,n,m,sg,3,o,0,0' name='राम'>"),
		token("1.2", "ने", "PSP", "<fs af='ने,psp,,,,,,' name='ने'>"),
		closing,
		chunk("2", "NP", "<fs af='किताब,n,f,sg,3,d,0,0' head='किताब' drel='k2:VGF' name='NP2'>"),
		token("2.1", "किताब", "NN", "<fs af='किताब,n,f,sg,3,d,0,0' name='किताब'>"),
		closing,
		chunk("3", "VGF", "<fs af='पढ़,v,f,sg,any,,ई,ई' voicetype='active' name='VGF'>"),
		token("3.1", "पढ़ी", "VM", "<fs af='पढ़,v,f,sg,any,,ई,ई' name='पढ़ी'>"),
		closing,
		chunk("4", "NP", "<fs af='बच्चा,n,m,sg,3,d,0,0' drel='k1:VGF2' name='NP3'>"),
		token("4.1", "बच्चा", "NN", "<fs af='बच्चा,n,m,sg,3,d,0,0' name='बच्चा'>"),
		closing,
		chunk("5", "VGF", "<fs af='रो,v,m,sg,any,,या,या' voicetype='active' name='VGF2'>"),
		token("5.1", "रोया", "VM", "<fs af='रो,v,m,sg,any,,या,या' name='रोया'>"),
		closing,
	)
}

func lightVerbSentence(verbRoot, lightRoot, lightForm string) string {
	return sentence("1",
		chunk("1", "NP", "<fs af='वह,pn,any,sg,3,d,0,0' drel='k1:VGF' name='NP'>"),
		token("1.1", "वह", "PRP", "<fs af='वह,pn,any,sg,3,d,0,0' name='वह'>"),
		closing,
		chunk("2", "VGF", "<fs af='"+verbRoot+",v,any,any,any,,0,0' name='VGF'>"),
		token("2.1", verbRoot, "VM", "<fs af='"+verbRoot+",v,any,any,any,,0,0' name='"+verbRoot+"'>"),
		token("2.2", lightForm, "VAUX", "<fs af='"+lightRoot+",v,m,sg,any,,या,या' name='"+lightForm+"'>"),
		closing,
	)
}
