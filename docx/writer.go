package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

const (
	// marginTwips is the section margin on all four sides:
	// 720 twips = 0.5 in = 1.27 cm.
	marginTwips = 720

	// emuPerInch converts inches to English Metric Units.
	emuPerInch = 914400
)

// Save writes a DOCX document containing the rendered page to path. The
// picture is scaled to pictureWidthInches wide, preserving the page's
// aspect ratio.
func Save(path string, page image.Image, pictureWidthInches float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(f, page, pictureWidthInches); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes a DOCX document containing the rendered page to w.
func Write(w io.Writer, page image.Image, pictureWidthInches float64) error {
	if pictureWidthInches <= 0 {
		return fmt.Errorf("picture width must be positive, got %g", pictureWidthInches)
	}

	b := page.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("page image has zero size")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, page); err != nil {
		return fmt.Errorf("encoding page image: %w", err)
	}

	cx := int64(pictureWidthInches * emuPerInch)
	cy := cx * int64(b.Dy()) / int64(b.Dx())

	return writePackage(w, buf.Bytes(), cx, cy)
}

// writePackage assembles the OOXML zip container around one PNG part.
func writePackage(w io.Writer, pngData []byte, cx, cy int64) error {
	zw := zip.NewWriter(w)

	xmlParts := []struct {
		name string
		doc  any
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"word/document.xml", buildDocument(cx, cy)},
		{"word/_rels/document.xml.rels", documentRels()},
	}

	for _, part := range xmlParts {
		if err := writeXMLPart(zw, part.name, part.doc); err != nil {
			return err
		}
	}

	fw, err := zw.Create("word/media/image1.png")
	if err != nil {
		return fmt.Errorf("creating media part: %w", err)
	}
	if _, err := fw.Write(pngData); err != nil {
		return fmt.Errorf("writing media part: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing DOCX container: %w", err)
	}
	return nil
}

// writeXMLPart marshals one XML document into the zip container.
func writeXMLPart(zw *zip.Writer, name string, doc any) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", name, err)
	}
	if _, err := io.WriteString(fw, xml.Header); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	if err := xml.NewEncoder(fw).Encode(doc); err != nil {
		return fmt.Errorf("encoding part %s: %w", name, err)
	}
	return nil
}

// contentTypes declares the content types of every part in the package.
func contentTypes() typesXML {
	return typesXML{
		XMLNS: nsCT,
		Defaults: []defaultXML{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
			{Extension: "png", ContentType: "image/png"},
		},
		Overrides: []overrideXML{
			{
				PartName:    "/word/document.xml",
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
			},
		},
	}
}

// packageRels relates the package root to the main document part.
func packageRels() relationshipsXML {
	return relationshipsXML{
		XMLNS: nsRel,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
		},
	}
}

// documentRels relates the main document to the embedded image.
func documentRels() relationshipsXML {
	return relationshipsXML{
		XMLNS: nsRel,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeImage, Target: "media/image1.png"},
		},
	}
}

// buildDocument constructs word/document.xml with one inline picture of the
// given extent and the fixed section margins.
func buildDocument(cx, cy int64) documentXML {
	return documentXML{
		XMLNSW:   nsW,
		XMLNSR:   nsR,
		XMLNSWP:  nsWP,
		XMLNSA:   nsA,
		XMLNSPic: nsPic,
		Body: bodyXML{
			Paragraph: paragraphXML{
				Run: runXML{
					Drawing: drawingXML{
						Inline: inlineXML{
							Extent: extentXML{CX: cx, CY: cy},
							DocPr:  docPrXML{ID: 1, Name: "Handwriting Page"},
							Graphic: graphicXML{
								Data: graphicDataXML{
									URI: nsPic,
									Pic: picXML{
										NvPicPr: nvPicPrXML{
											CNvPr: docPrXML{ID: 1, Name: "image1.png"},
										},
										BlipFill: blipFillXML{
											Blip: blipXML{Embed: "rId1"},
										},
										SpPr: spPrXML{
											Xfrm: xfrmXML{
												Ext: extentXML{CX: cx, CY: cy},
											},
											Geom: prstGeomXML{Prst: "rect"},
										},
									},
								},
							},
						},
					},
				},
			},
			SectPr: sectPrXML{
				PgMar: pgMarXML{
					Top:    marginTwips,
					Right:  marginTwips,
					Bottom: marginTwips,
					Left:   marginTwips,
				},
			},
		},
	}
}
