// Package content holds the static site content: profile, skills, projects,
// certifications, education and experience. The content is a plain value fixed
// at build time; the accessors never fail and never mutate it.
package content

// Proficiency is a coarse self-reported skill rating.
type Proficiency string

const (
	Basic        Proficiency = "Basic"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
)

// Skill is a single technology entry inside a category.
// IconKey is looked up in the icon registry; unknown keys fall back to a
// default icon, never an error.
type Skill struct {
	Name        string
	Proficiency Proficiency
	IconKey     string
}

// SkillCategory groups skills under a display heading. Slice order controls
// display order.
type SkillCategory struct {
	CategoryName string
	Items        []Skill
}

// Project is a showcase entry. Technologies and Features are never empty for
// displayed projects; LiveURL, DemoURL, Role, Note and ImageRef are optional
// and hidden when unset.
type Project struct {
	Title            string
	ShortDescription string
	LongDescription  string
	Technologies     []string
	Features         []string
	Status           string
	Role             string
	LiveURL          string
	DemoURL          string
	Note             string
	ImageRef         string
}

// Certification is a completed course or credential.
type Certification struct {
	ID            int
	Name          string
	Issuer        string
	Platform      string
	Date          string
	CredentialURL string
	LogoKey       string
}

// EducationEntry is a degree or formal program.
type EducationEntry struct {
	Degree      string
	Institution string
	University  string
	Duration    string
}

// ExperienceEntry is an activity or engagement shown in the experience section.
type ExperienceEntry struct {
	Title        string
	Organization string
	Duration     string
	Description  string
}

// Profile holds the identity block rendered in the hero, contact and footer
// sections.
type Profile struct {
	Name        string
	Headline    string
	Tagline     string
	Location    string
	Email       string
	LinkedInURL string
	GitHubURL   string
	AboutMD     string // markdown, rendered in the about section
}

// Skills returns the skill categories in display order.
func Skills() []SkillCategory {
	return siteSkills
}

// Projects returns the project showcase entries in display order.
func Projects() []Project {
	return siteProjects
}

// Certifications returns the certification entries in display order.
func Certifications() []Certification {
	return siteCertifications
}

// Education returns the education entries in display order.
func Education() []EducationEntry {
	return siteEducation
}

// Experience returns the experience entries in display order.
func Experience() []ExperienceEntry {
	return siteExperience
}

// Owner returns the profile of the site owner.
func Owner() Profile {
	return siteProfile
}

// SectionIDs lists the scrollable page sections in document order. These ids
// double as anchors for the navbar and as keys for visibility tracking.
func SectionIDs() []string {
	return []string{"about", "education", "skills", "projects", "certifications", "experience", "contact"}
}
