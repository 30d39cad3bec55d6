package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont      = "Times New Roman"
	docxBodySize  = 13
	docxTitleSize = 16
	docxColor     = "000000"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[\-\*+]\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ExportDocx renders a markdown analysis into <Dir>/<base>_analysis.docx.
func (s Store) ExportDocx(audioPath, markdown string) (string, error) {
	path := s.DocxPathFor(audioPath)
	if err := writeDocx(baseName(audioPath)+audioExt, markdown, path); err != nil {
		return "", fmt.Errorf("export docx: %w", err)
	}
	return path, nil
}

// writeDocx renders headings, bullets and **bold** spans. Other lines become
// plain paragraphs.
func writeDocx(title, markdown, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	heading(doc.AddParagraph(""), title, docxTitleSize)

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "" || line == "---":
		case reHeading.MatchString(line):
			m := reHeading.FindStringSubmatch(line)
			heading(doc.AddParagraph(""), m[2], headingSize(len(m[1])))
		case reBullet.MatchString(line):
			m := reBullet.FindStringSubmatch(line)
			inline(doc.AddParagraph(""), "• "+m[1])
		default:
			inline(doc.AddParagraph(""), line)
		}
	}

	return doc.SaveTo(path)
}

func headingSize(level int) uint64 {
	if level >= 4 {
		return docxBodySize
	}
	return uint64(docxTitleSize + 1 - level)
}

func heading(p *docx.Paragraph, text string, size uint64) {
	p.AddText(stripMarkers(text)).Font(docxFont).Size(size).Color(docxColor).Bold(true)
}

// inline writes text as alternating plain and bold runs.
func inline(p *docx.Paragraph, text string) {
	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if plain := text[last:loc[0]]; plain != "" {
			p.AddText(stripMarkers(plain)).Font(docxFont).Size(docxBodySize).Color(docxColor)
		}
		p.AddText(stripMarkers(text[loc[2]:loc[3]])).Font(docxFont).Size(docxBodySize).Color(docxColor).Bold(true)
		last = loc[1]
	}
	if rest := text[last:]; rest != "" {
		p.AddText(stripMarkers(rest)).Font(docxFont).Size(docxBodySize).Color(docxColor)
	}
}

var markerReplacer = strings.NewReplacer("**", "", "__", "", "`", "")

func stripMarkers(s string) string {
	return markerReplacer.Replace(s)
}
