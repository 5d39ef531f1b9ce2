package link

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"slices"
)

// Link is a hypermedia link: a relation name and the expanded target.
type Link struct {
	// Rel is the link relation, e.g. "self".
	Rel string `json:"rel" xml:"rel,attr" yaml:"rel"`

	// Href is the expanded URI.
	Href string `json:"href" xml:"href,attr" yaml:"href"`

	// Templated is true when Href still contains unbound placeholders.
	Templated bool `json:"templated,omitempty" xml:"templated,attr,omitempty" yaml:"templated,omitempty"`
}

// Links is an ordered collection of links. A relation may appear several
// times, once per element of an exploded binding.
//
// Links serializes to JSON as an object keyed by relation. A relation that
// appears once maps to a link object; a repeated relation maps to an array:
//
//	{"item": [{"href": "product/1"}, {"href": "product/2"}], "self": {"href": "products"}}
//
// To XML it serializes as <links><link rel="..." href="..."/></links>.
type Links []Link

// Rels returns the distinct relations in order of first appearance.
func (ls Links) Rels() []string {
	var rels []string
	for _, l := range ls {
		if !slices.Contains(rels, l.Rel) {
			rels = append(rels, l.Rel)
		}
	}
	return rels
}

// ByRel returns the links with the given relation, in order.
func (ls Links) ByRel(rel string) Links {
	var out Links
	for _, l := range ls {
		if l.Rel == rel {
			out = append(out, l)
		}
	}
	return out
}

// Grouped returns the links keyed by relation.
func (ls Links) Grouped() map[string]Links {
	groups := make(map[string]Links)
	for _, l := range ls {
		groups[l.Rel] = append(groups[l.Rel], l)
	}
	return groups
}

// jsonLink is the per-link JSON object; the relation is the enclosing key.
type jsonLink struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (ls Links) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(ls))
	for rel, group := range ls.Grouped() {
		if len(group) == 1 {
			out[rel] = jsonLink{Href: group[0].Href, Templated: group[0].Templated}
			continue
		}
		items := make([]jsonLink, len(group))
		for i, l := range group {
			items[i] = jsonLink{Href: l.Href, Templated: l.Templated}
		}
		out[rel] = items
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Relations are restored in
// sorted order; links of a repeated relation keep their array order.
func (ls *Links) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rels := make([]string, 0, len(raw))
	for rel := range raw {
		rels = append(rels, rel)
	}
	slices.Sort(rels)

	out := make(Links, 0, len(raw))
	for _, rel := range rels {
		msg := raw[rel]
		var items []jsonLink
		if err := json.Unmarshal(msg, &items); err != nil {
			var single jsonLink
			if err := json.Unmarshal(msg, &single); err != nil {
				return fmt.Errorf("link %q: %w", rel, err)
			}
			items = []jsonLink{single}
		}
		for _, item := range items {
			out = append(out, Link{Rel: rel, Href: item.Href, Templated: item.Templated})
		}
	}
	*ls = out
	return nil
}

// xmlLinks is the XML document shape of Links.
type xmlLinks struct {
	XMLName xml.Name `xml:"links"`
	Links   []Link   `xml:"link"`
}

// MarshalXML implements xml.Marshaler.
func (ls Links) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return e.EncodeElement(xmlLinks{Links: ls}, xml.StartElement{Name: xml.Name{Local: "links"}})
}

// UnmarshalXML implements xml.Unmarshaler.
func (ls *Links) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var doc xmlLinks
	if err := d.DecodeElement(&doc, &start); err != nil {
		return err
	}
	*ls = doc.Links
	return nil
}
