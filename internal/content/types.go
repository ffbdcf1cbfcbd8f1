package content

import "strings"

// FeaturedArticleID marks the article shown first and highlighted in the list.
const FeaturedArticleID = "0"

// Icon types a LifeEvent may carry.
const (
	IconBirth      = "birth"
	IconSchool     = "school"
	IconUniversity = "university"
	IconMilestone  = "milestone"
)

// Dictionary is the complete content set for one language.
type Dictionary struct {
	Profile    Profile                `yaml:"profile"`
	Skills     []SkillCategory        `yaml:"skills"`
	Experience []Job                  `yaml:"experience"`
	Thinking   []Article              `yaml:"thinking"`
	Growth     []LifeEvent            `yaml:"growth"`
	Education  Education              `yaml:"education"`
	Diagrams   map[string]DiagramText `yaml:"diagrams"`
	UI         UI                     `yaml:"ui"`
}

// Profile is the person the site is about.
type Profile struct {
	Name            string  `yaml:"name" json:"name"`
	Role            string  `yaml:"role" json:"role"`
	ExperienceYears int     `yaml:"experienceYears" json:"experience_years"`
	Contact         Contact `yaml:"contact" json:"contact"`
	Summary         string  `yaml:"summary" json:"summary"`
}

type Contact struct {
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email    string `yaml:"email" json:"email"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
}

// MailtoURL returns the mailto: link for the profile's email, or "" when
// no email is set.
func (p Profile) MailtoURL() string {
	email := strings.TrimSpace(p.Contact.Email)
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

type SkillCategory struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

// Metric is a presentation-only achievement figure. Values are authored, not computed.
type Metric struct {
	Label       string `yaml:"label" json:"label"`
	Value       string `yaml:"value" json:"value"`
	Prefix      string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Change      int    `yaml:"change,omitempty" json:"change,omitempty"`
	Description string `yaml:"description" json:"description"`
}

// Display joins prefix, value and suffix.
func (m Metric) Display() string {
	return m.Prefix + m.Value + m.Suffix
}

type Job struct {
	Company      string   `yaml:"company" json:"company"`
	Role         string   `yaml:"role" json:"role"`
	Period       string   `yaml:"period" json:"period"`
	LogoColor    string   `yaml:"logoColor" json:"logo_color"`
	Highlights   []string `yaml:"highlights" json:"highlights"`
	TechStack    []string `yaml:"techStack" json:"tech_stack"`
	Achievements []Metric `yaml:"achievements" json:"achievements"`
}

// Article is one entry of the thinking section. Articles are immutable once loaded.
type Article struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Date     string   `yaml:"date" json:"date"`
	ReadTime string   `yaml:"readTime" json:"read_time"`
	Tags     []string `yaml:"tags" json:"tags"`
	Summary  string   `yaml:"summary" json:"summary"`
	Content  []Block  `yaml:"content" json:"-"`
}

// HasTag reports whether the article carries tag.
func (a Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Featured reports whether this is the featured article.
func (a Article) Featured() bool {
	return a.ID == FeaturedArticleID
}

type Coordinates struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// LifeEvent is a growth timeline entry. Coordinates are percentages on an
// abstract canvas, not geographic positions.
type LifeEvent struct {
	Year        string      `yaml:"year" json:"year"`
	Title       string      `yaml:"title" json:"title"`
	Location    string      `yaml:"location" json:"location"`
	Description string      `yaml:"description" json:"description"`
	IconType    string      `yaml:"iconType" json:"icon_type"`
	Details     []string    `yaml:"details,omitempty" json:"details,omitempty"`
	Coordinates Coordinates `yaml:"coordinates" json:"coordinates"`
}

type Education struct {
	School string `yaml:"school" json:"school"`
	Degree string `yaml:"degree" json:"degree"`
	Period string `yaml:"period" json:"period"`
}

// DiagramText holds the localized strings of one article diagram.
type DiagramText struct {
	Panels []DiagramPanel `yaml:"panels"`
}

type DiagramPanel struct {
	Badge    string   `yaml:"badge,omitempty"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Items    []string `yaml:"items,omitempty"`
	Body     string   `yaml:"body,omitempty"`
}

// UI holds the interface strings.
type UI struct {
	Nav      NavStrings      `yaml:"nav"`
	Hero     HeroStrings     `yaml:"hero"`
	Impact   ImpactStrings   `yaml:"impact"`
	Timeline TimelineStrings `yaml:"timeline"`
	Skills   SkillsStrings   `yaml:"skills"`
	Thinking ThinkingStrings `yaml:"thinking"`
	Growth   GrowthStrings   `yaml:"growth"`
	Startups StartupsStrings `yaml:"startups"`
	Footer   FooterStrings   `yaml:"footer"`
}

type NavStrings struct {
	Resume   string `yaml:"resume"`
	Startups string `yaml:"startups"`
	Thinking string `yaml:"thinking"`
	Growth   string `yaml:"growth"`
}

type HeroStrings struct {
	Status     string   `yaml:"status"`
	RolePrefix string   `yaml:"rolePrefix"`
	Contact    string   `yaml:"contact"`
	Terminal   []string `yaml:"terminal"`
	Ticker     []string `yaml:"ticker"`
}

type ImpactStrings struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Stats    []Stat `yaml:"stats"`
}

// Stat is a static dashboard figure.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Sub   string `yaml:"sub"`
	Trend string `yaml:"trend,omitempty"`
}

type TimelineStrings struct {
	Title            string `yaml:"title"`
	Positions        string `yaml:"positions"`
	Exp              string `yaml:"exp"`
	Responsibilities string `yaml:"responsibilities"`
	Metrics          string `yaml:"metrics"`
}

type SkillsStrings struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type ThinkingStrings struct {
	Subtitle    string `yaml:"subtitle"`
	Back        string `yaml:"back"`
	FilterBy    string `yaml:"filterBy"`
	All         string `yaml:"all"`
	Empty       string `yaml:"empty"`
	ClearFilter string `yaml:"clearFilter"`
	ReadEntry   string `yaml:"readEntry"`
	Figure      string `yaml:"figure"`
	EndOfFile   string `yaml:"endOfFile"`
}

type GrowthStrings struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type StartupsStrings struct {
	Message string `yaml:"message"`
}

type FooterStrings struct {
	Education string `yaml:"education"`
	Connect   string `yaml:"connect"`
	Status    string `yaml:"status"`
	Copyright string `yaml:"copyright"`
}
