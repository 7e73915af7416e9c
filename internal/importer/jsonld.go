package importer

import (
	"bytes"
	"encoding/json"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobboard/internal/models"
)

// ParseJobPostings extracts schema.org JobPosting entries embedded as JSON-LD.
// Postings without a title and repeats within one document are dropped.
func ParseJobPostings(doc *goquery.Document) []models.JobDraft {
	var drafts []models.JobDraft
	seen := map[string]struct{}{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		payload := scriptJSON(s.Text())
		if payload == nil {
			return
		}
		walk(payload, func(p posting) {
			draft := p.draft()
			if draft.Title == "" {
				return
			}
			key := strings.ToLower(draft.Title + "|" + draft.Location + "|" + draft.ContactNumber)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			drafts = append(drafts, draft)
		})
	})

	return drafts
}

// scriptJSON returns the payload of an ld+json script, or nil when it is not
// valid JSON. Some sites wrap the payload in an HTML comment.
func scriptJSON(text string) json.RawMessage {
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, "<!--"), "-->"))
	if text == "" || !json.Valid([]byte(text)) {
		return nil
	}
	return json.RawMessage(text)
}

// container lists the keys under which pages nest postings.
type container struct {
	Types ldTypes         `json:"@type"`
	Graph json.RawMessage `json:"@graph"`
	Items json.RawMessage `json:"itemListElement"`
	Main  json.RawMessage `json:"mainEntity"`
	Item  json.RawMessage `json:"item"`
}

func walk(raw json.RawMessage, visit func(posting)) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			return
		}
		for _, item := range items {
			walk(item, visit)
		}
	case '{':
		var node container
		if json.Unmarshal(raw, &node) != nil {
			return
		}
		if node.Types.has("JobPosting") {
			var p posting
			if json.Unmarshal(raw, &p) == nil {
				visit(p)
			}
			return
		}
		for _, child := range []json.RawMessage{node.Graph, node.Items, node.Main, node.Item} {
			walk(child, visit)
		}
	}
}

// posting is the part of a JobPosting the board stores.
type posting struct {
	Title          ldText    `json:"title"`
	Name           ldText    `json:"name"`
	Description    ldText    `json:"description"`
	Qualifications ldText    `json:"qualifications"`
	Experience     ldText    `json:"experienceRequirements"`
	Skills         ldText    `json:"skills"`
	Telephone      ldText    `json:"telephone"`
	Organization   ldContact `json:"hiringOrganization"`
	Contact        ldContact `json:"applicationContact"`
	Location       ldPlace   `json:"jobLocation"`
	Salary         ldSalary  `json:"baseSalary"`
}

func (p posting) draft() models.JobDraft {
	return models.JobDraft{
		Title:         cleanText(firstOf(p.Title, p.Name)),
		Description:   cleanText(string(p.Description)),
		Requirements:  cleanText(firstOf(p.Qualifications, p.Experience, p.Skills)),
		Location:      string(p.Location),
		SalaryRange:   string(p.Salary),
		ContactNumber: firstOf(p.Telephone, p.Organization.Telephone, p.Contact.Telephone),
	}
}

func firstOf(values ...ldText) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

// cleanText strips markup that job boards commonly embed in descriptions.
func cleanText(value string) string {
	value = html.UnescapeString(value)
	if strings.Contains(value, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(value)); err == nil {
			value = doc.Text()
		}
	}
	return strings.Join(strings.Fields(value), " ")
}

// ldTypes accepts "@type" as one name or a list of names.
type ldTypes []string

func (t *ldTypes) UnmarshalJSON(data []byte) error {
	var one string
	if json.Unmarshal(data, &one) == nil {
		*t = ldTypes{one}
		return nil
	}
	var many []string
	if json.Unmarshal(data, &many) == nil {
		*t = many
	}
	return nil
}

func (t ldTypes) has(name string) bool {
	for _, v := range t {
		if strings.EqualFold(strings.TrimPrefix(v, "schema:"), name) {
			return true
		}
	}
	return false
}

// ldText flattens a textual property. Strings and numbers are kept, lists
// are joined with ", " and things contribute their name.
type ldText string

func (t *ldText) UnmarshalJSON(data []byte) error {
	*t = ldText(flatten(data))
	return nil
}

func flatten(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	switch data[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(data, &items) != nil {
			return ""
		}
		var parts []string
		for _, item := range items {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case '{':
		var thing struct {
			Name json.RawMessage `json:"name"`
		}
		if json.Unmarshal(data, &thing) != nil {
			return ""
		}
		return flatten(thing.Name)
	case 'n', 't', 'f':
		return ""
	default:
		// Number literal, kept as written.
		return string(data)
	}
}

// ldContact keeps the telephone of an Organization or ContactPoint. Other
// shapes are ignored.
type ldContact struct {
	Telephone ldText
}

func (c *ldContact) UnmarshalJSON(data []byte) error {
	var v struct {
		Telephone ldText `json:"telephone"`
	}
	if json.Unmarshal(data, &v) == nil {
		c.Telephone = v.Telephone
	}
	return nil
}

// ldPlace renders jobLocation as "street, city, region, postcode, country".
// Several places are joined with "; ".
type ldPlace string

func (p *ldPlace) UnmarshalJSON(data []byte) error {
	*p = ldPlace(place(data))
	return nil
}

func place(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(data, &items) != nil {
			return ""
		}
		var parts []string
		for _, item := range items {
			if s := place(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case '{':
		var wrapped struct {
			Address json.RawMessage `json:"address"`
		}
		if json.Unmarshal(data, &wrapped) == nil && len(wrapped.Address) > 0 {
			return place(wrapped.Address)
		}
		var addr postalAddress
		if json.Unmarshal(data, &addr) != nil {
			return ""
		}
		return addr.String()
	default:
		return flatten(data)
	}
}

type postalAddress struct {
	Street   ldText `json:"streetAddress"`
	Locality ldText `json:"addressLocality"`
	Region   ldText `json:"addressRegion"`
	Postcode ldText `json:"postalCode"`
	Country  ldText `json:"addressCountry"`
}

func (a postalAddress) String() string {
	var parts []string
	for _, part := range []ldText{a.Street, a.Locality, a.Region, a.Postcode, a.Country} {
		if part != "" {
			parts = append(parts, string(part))
		}
	}
	return strings.Join(parts, ", ")
}

// ldSalary renders baseSalary as "amount currency" or "min - max currency",
// followed by "/unit" when the amount names one.
type ldSalary string

func (s *ldSalary) UnmarshalJSON(data []byte) error {
	*s = ldSalary(salary(data))
	return nil
}

func salary(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return flatten(data)
	}

	var amount struct {
		Currency ldText          `json:"currency"`
		Value    json.RawMessage `json:"value"`
	}
	if json.Unmarshal(data, &amount) != nil {
		return ""
	}

	var figure, unit string
	if value := bytes.TrimSpace(amount.Value); len(value) > 0 && value[0] == '{' {
		var q struct {
			Value ldText `json:"value"`
			Min   ldText `json:"minValue"`
			Max   ldText `json:"maxValue"`
			Unit  ldText `json:"unitText"`
		}
		if json.Unmarshal(value, &q) != nil {
			return ""
		}
		switch {
		case q.Value != "":
			figure = string(q.Value)
		case q.Min != "" && q.Max != "":
			figure = string(q.Min) + " - " + string(q.Max)
		default:
			figure = firstOf(q.Min, q.Max)
		}
		unit = strings.ToLower(string(q.Unit))
	} else {
		figure = flatten(value)
	}
	if figure == "" {
		return ""
	}

	out := strings.TrimSpace(figure + " " + string(amount.Currency))
	if unit != "" {
		out += "/" + unit
	}
	return out
}
