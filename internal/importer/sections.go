package importer

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/tabular"
	"github.com/jonathan/resume-studio/internal/types"
)

// processProfile maps the first profile record onto the basics section.
// Fields are copied only when the source value is non-empty, so a partial
// profile row never overwrites defaults with empty strings.
func processProfile(doc *types.Document, records []tabular.Record) error {
	if len(records) == 0 {
		return nil
	}
	rec := records[0]

	first := strings.TrimSpace(rec["firstName"])
	last := strings.TrimSpace(rec["lastName"])
	doc.Basics.Name = strings.TrimSpace(first + " " + last)

	if v := rec["headline"]; v != "" {
		doc.Basics.Label = v
	}
	if v := rec["summary"]; v != "" {
		doc.Basics.Summary = v
	}
	if v := rec["emailAddress"]; v != "" {
		doc.Basics.Email = v
	}
	if v := rec["geoLocation"]; v != "" {
		doc.Basics.Location.City = v
	}

	return nil
}

// processPositions maps position records onto employment items.
func processPositions(doc *types.Document, records []tabular.Record) error {
	for _, rec := range records {
		doc.Work = append(doc.Work, types.WorkItem{
			Company:    rec["companyName"],
			Position:   rec["title"],
			Location:   rec["location"],
			Summary:    rec["description"],
			StartDate:  NormalizeDate(rec["startedOn"]),
			EndDate:    NormalizeDate(rec["finishedOn"]),
			Highlights: []types.SubItem{},
			Visible:    true,
		})
	}
	return nil
}

// processEducation maps education records onto education items.
func processEducation(doc *types.Document, records []tabular.Record) error {
	for _, rec := range records {
		doc.Education = append(doc.Education, types.EducationItem{
			Institution: rec["schoolName"],
			Degree:      rec["degreeName"],
			Field:       rec["fieldOfStudy"],
			StartDate:   NormalizeDate(rec["startedOn"]),
			EndDate:     NormalizeDate(rec["finishedOn"]),
			Summary:     rec["notes"],
			Courses:     []types.SubItem{},
			Visible:     true,
		})
	}
	return nil
}

// processSkills maps skill records onto skill items, deriving the
// qualitative level from the endorsement count. Rows without a name cannot
// be mapped and are preserved in the non-conforming bucket.
func processSkills(doc *types.Document, records []tabular.Record) error {
	for _, rec := range records {
		if strings.TrimSpace(rec["name"]) == "" {
			recordInvalidField(doc, types.InvalidField{
				Section: types.SectionSkills,
				Field:   "name",
				Reason:  "skill row has no name",
				Value:   rec["endorsementCount"],
			})
			continue
		}
		doc.Skills = append(doc.Skills, types.SkillItem{
			Name:     rec["name"],
			Level:    SkillLevelFromEndorsements(parseEndorsementCount(rec["endorsementCount"])),
			Keywords: []types.SubItem{},
			Visible:  true,
		})
	}
	return nil
}

// processLanguages maps language records onto language items. A missing
// proficiency defaults to native fluency.
func processLanguages(doc *types.Document, records []tabular.Record) error {
	for _, rec := range records {
		if strings.TrimSpace(rec["name"]) == "" {
			recordInvalidField(doc, types.InvalidField{
				Section: types.SectionLanguages,
				Field:   "name",
				Reason:  "language row has no name",
				Value:   rec["proficiency"],
			})
			continue
		}
		fluency := rec["proficiency"]
		if fluency == "" {
			fluency = "Native speaker"
		}
		doc.Languages = append(doc.Languages, types.LanguageItem{
			Name:    rec["name"],
			Fluency: fluency,
			Visible: true,
		})
	}
	return nil
}

// processCertifications maps certification records onto certification
// items. Only the issue date is retained; the finished-on column exists in
// the foreign schema but is intentionally not mapped.
func processCertifications(doc *types.Document, records []tabular.Record) error {
	for _, rec := range records {
		if strings.TrimSpace(rec["name"]) == "" {
			recordInvalidField(doc, types.InvalidField{
				Section: types.SectionCertifications,
				Field:   "name",
				Reason:  "certification row has no name",
				Value:   rec["authority"],
			})
			continue
		}
		doc.Certifications = append(doc.Certifications, types.CertificationItem{
			Name:    rec["name"],
			Issuer:  rec["authority"],
			Date:    NormalizeDate(rec["startedOn"]),
			URL:     rec["url"],
			Visible: true,
		})
	}
	return nil
}
