// Package docx writes minimal DOCX (Office Open XML) documents that embed
// a single rendered page image.
package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// documentXML represents word/document.xml: a single paragraph holding one
// inline drawing, followed by the section properties.
type documentXML struct {
	XMLName  xml.Name `xml:"w:document"`
	XMLNSW   string   `xml:"xmlns:w,attr"`
	XMLNSR   string   `xml:"xmlns:r,attr"`
	XMLNSWP  string   `xml:"xmlns:wp,attr"`
	XMLNSA   string   `xml:"xmlns:a,attr"`
	XMLNSPic string   `xml:"xmlns:pic,attr"`
	Body     bodyXML  `xml:"w:body"`
}

// bodyXML represents the document body.
type bodyXML struct {
	Paragraph paragraphXML `xml:"w:p"`
	SectPr    sectPrXML    `xml:"w:sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Run runXML `xml:"w:r"`
}

// runXML represents a text run holding the drawing.
type runXML struct {
	Drawing drawingXML `xml:"w:drawing"`
}

// drawingXML represents a DrawingML drawing (<w:drawing>).
type drawingXML struct {
	Inline inlineXML `xml:"wp:inline"`
}

// inlineXML represents an inline (in-text-flow) drawing anchor.
type inlineXML struct {
	Extent  extentXML  `xml:"wp:extent"`
	DocPr   docPrXML   `xml:"wp:docPr"`
	Graphic graphicXML `xml:"a:graphic"`
}

// extentXML is the drawing extent in EMUs.
type extentXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

// docPrXML identifies a drawing object.
type docPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// graphicXML wraps the graphic frame content.
type graphicXML struct {
	Data graphicDataXML `xml:"a:graphicData"`
}

// graphicDataXML declares the content type of the graphic frame.
type graphicDataXML struct {
	URI string `xml:"uri,attr"`
	Pic picXML `xml:"pic:pic"`
}

// picXML represents the embedded picture.
type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"pic:nvPicPr"`
	BlipFill blipFillXML `xml:"pic:blipFill"`
	SpPr     spPrXML     `xml:"pic:spPr"`
}

// nvPicPrXML holds the picture's non-visual properties.
type nvPicPrXML struct {
	CNvPr    docPrXML `xml:"pic:cNvPr"`
	CNvPicPr struct{} `xml:"pic:cNvPicPr"`
}

// blipFillXML references the image part that fills the picture shape.
type blipFillXML struct {
	Blip    blipXML    `xml:"a:blip"`
	Stretch stretchXML `xml:"a:stretch"`
}

// blipXML references an image relationship.
type blipXML struct {
	Embed string `xml:"r:embed,attr"`
}

// stretchXML stretches the image to fill the shape.
type stretchXML struct {
	FillRect struct{} `xml:"a:fillRect"`
}

// spPrXML holds the picture's shape properties.
type spPrXML struct {
	Xfrm xfrmXML     `xml:"a:xfrm"`
	Geom prstGeomXML `xml:"a:prstGeom"`
}

// xfrmXML is the shape transform (offset and extent in EMUs).
type xfrmXML struct {
	Off offXML    `xml:"a:off"`
	Ext extentXML `xml:"a:ext"`
}

// offXML is a shape offset.
type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

// prstGeomXML is a preset shape geometry.
type prstGeomXML struct {
	Prst string `xml:"prst,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	PgMar pgMarXML `xml:"w:pgMar"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}

// typesXML represents [Content_Types].xml.
type typesXML struct {
	XMLName   xml.Name      `xml:"Types"`
	XMLNS     string        `xml:"xmlns,attr"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

// defaultXML maps a file extension to a content type.
type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// overrideXML maps a specific part to a content type.
type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	XMLNS         string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents one package relationship.
type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
