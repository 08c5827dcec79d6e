package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocxParagraphs_BodyParagraphsOnly(t *testing.T) {
	body := para("Erster Absatz") +
		`<w:tbl><w:tr><w:tc>` + para("Tabellenzelle") + `</w:tc></w:tr></w:tbl>` +
		para("Zweiter Absatz")

	got, err := ReadDocxParagraphs(buildDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Erster Absatz", "Zweiter Absatz"}, got)
}

func TestReadDocxParagraphs_RunsTabsAndBreaks(t *testing.T) {
	body := `<w:p>` +
		`<w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>` +
		`<w:r><w:t>Name:</w:t></w:r>` +
		`<w:r><w:tab/><w:t>Max</w:t></w:r>` +
		`<w:r><w:br/><w:t xml:space="preserve"> Mustermann</w:t></w:r>` +
		`</w:p>`

	got, err := ReadDocxParagraphs(buildDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name:\tMax\n Mustermann"}, got)
}

func TestReadDocxParagraphs_HyperlinkTextIncluded(t *testing.T) {
	body := `<w:p><w:r><w:t xml:space="preserve">Profil: </w:t></w:r>` +
		`<w:hyperlink><w:r><w:t>linkedin.com/in/max</w:t></w:r></w:hyperlink></w:p>`

	got, err := ReadDocxParagraphs(buildDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Profil: linkedin.com/in/max"}, got)
}

func TestReadDocxParagraphs_EscapedText(t *testing.T) {
	got, err := ReadDocxParagraphs(buildDocx(t, para("Müller &amp; Söhne &lt;KG&gt;")))
	require.NoError(t, err)
	assert.Equal(t, []string{"Müller & Söhne <KG>"}, got)
}

func TestReadDocxParagraphs_Empty(t *testing.T) {
	_, err := ReadDocxParagraphs(nil)
	assert.Error(t, err)
}
