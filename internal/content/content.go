// Package content is the static, read-only content model shared by
// every skin: articles, events, talks, projects, and contact details.
package content

// Article is a published piece with a markdown body for the detail view.
type Article struct {
	Slug    string
	Title   string
	Date    string
	Summary string
	Body    string
}

// EventRole describes the author's involvement in an event.
type EventRole string

const (
	RoleSpeaking  EventRole = "speaking"
	RoleWorkshop  EventRole = "workshop"
	RoleAttending EventRole = "attending"
)

// Event is a conference or meetup appearance.
type Event struct {
	Name     string
	Date     string
	Location string
	Role     EventRole
	Talk     string
}

// TalkType distinguishes conference talks from hands-on workshops.
type TalkType string

const (
	TypeTalk     TalkType = "talk"
	TypeWorkshop TalkType = "workshop"
)

// Talk is a session delivered at an event, with a markdown abstract.
type Talk struct {
	Slug        string
	Title       string
	Type        TalkType
	Event       string
	Date        string
	Description string
	Abstract    string
}

// Project is an open-source or side project.
type Project struct {
	Name        string
	Description string
	Link        string
	Tech        []string
}

// SocialLinks points at the author's public profiles.
var SocialLinks = map[string]string{
	"github":   "https://github.com/bendechrai",
	"linkedin": "https://www.linkedin.com/in/bendechrai/",
	"twitter":  "https://twitter.com/bendechrai",
}

// BioLines is the short intro every skin's home view renders.
var BioLines = []string{
	"Ben de Chrai",
	"Developer advocate, security tinkerer, conference speaker.",
	"Based in Melbourne, AU. Usually found near an espresso machine.",
}

// Articles in reverse-chronological order.
var Articles = []Article{
	{
		Slug:    "building-passwordless-auth-with-webauthn",
		Title:   "Building Passwordless Auth with WebAuthn",
		Date:    "2026-01-15",
		Summary: "A deep dive into implementing FIDO2 WebAuthn for seamless, passwordless user authentication.",
		Body: `Passwords are the duct tape of the internet: everywhere, ugly, and
failing quietly. **WebAuthn** replaces them with public-key credentials
bound to the device.

## The ceremony

1. The server issues a challenge.
2. The authenticator signs it with a key that never leaves the device.
3. The server verifies the signature against the registered public key.

No shared secret, nothing to phish, nothing to leak.`,
	},
	{
		Slug:    "the-state-of-developer-experience-in-2026",
		Title:   "The State of Developer Experience in 2026",
		Date:    "2025-12-03",
		Summary: "Reflections on how DX tooling has evolved and where it's heading next.",
		Body: `DX stopped being a buzzword the moment platform teams got budget
lines. The surprising winners this year were not the flashiest tools but
the *boring* ones: reproducible environments, fast feedback loops, and
docs that answer the question you actually asked.`,
	},
	{
		Slug:    "privacy-first-architecture-for-modern-web-apps",
		Title:   "Privacy-First Architecture for Modern Web Apps",
		Date:    "2025-10-18",
		Summary: "Practical patterns for building applications that respect user privacy by default.",
		Body: `Privacy is an architecture decision, not a settings page. Collect
less, keep it shorter, and make deletion a first-class code path.

- Data you never store cannot be breached.
- Retention windows belong in the schema, not in a wiki.
- "Anonymized" is a claim; prove it with a re-identification test.`,
	},
	{
		Slug:    "rust-for-web-developers-a-practical-guide",
		Title:   "Rust for Web Developers: A Practical Guide",
		Date:    "2025-08-22",
		Summary: "Why Rust is worth learning even if you live in JavaScript-land, with real-world examples.",
		Body: `You do not need to rewrite anything. Start with one CLI tool, one
WASM module, one background worker. The borrow checker is a rude but
honest code reviewer, and after a month you will miss it everywhere else.`,
	},
	{
		Slug:    "why-your-smart-lock-needs-better-auth",
		Title:   "Why Your Smart Lock Needs Better Auth",
		Date:    "2025-06-10",
		Summary: "IoT security is still a mess. Here's what manufacturers keep getting wrong.",
		Body: `A lock that accepts a replayed Bluetooth packet is a decoration.
The fix is twenty lines of challenge-response, and the industry keeps
shipping without it because certification tests the hinge, not the
handshake.`,
	},
}

// Events in chronological order.
var Events = []Event{
	{Name: "NDC Sydney", Date: "2026-03-17", Location: "Sydney, AU", Role: RoleSpeaking, Talk: "Zero Trust Authentication for the Modern Web"},
	{Name: "Web Directions Summit", Date: "2026-04-08", Location: "Melbourne, AU", Role: RoleSpeaking, Talk: "The Art of Developer Advocacy"},
	{Name: "DDD Melbourne", Date: "2026-06-20", Location: "Melbourne, AU", Role: RoleWorkshop, Talk: "Building with WebAuthn: Hands-On Workshop"},
	{Name: "JSConf Australia", Date: "2026-08-12", Location: "Melbourne, AU", Role: RoleSpeaking, Talk: "Securing the Edge: Auth at the CDN Layer"},
}

// Talks in chronological order.
var Talks = []Talk{
	{
		Slug:        "zero-trust-authentication-for-the-modern-web",
		Title:       "Zero Trust Authentication for the Modern Web",
		Type:        TypeTalk,
		Event:       "NDC Sydney 2026",
		Date:        "2026-03-17",
		Description: "Exploring zero-trust principles applied to web authentication, from mTLS to WebAuthn.",
		Abstract: `"Never trust, always verify" sounds great on a slide. This talk
walks through what it means for a real login flow: mTLS between
services, WebAuthn at the edge, and short-lived tokens everywhere.`,
	},
	{
		Slug:        "the-art-of-developer-advocacy",
		Title:       "The Art of Developer Advocacy",
		Type:        TypeTalk,
		Event:       "Web Directions Summit 2026",
		Date:        "2026-04-08",
		Description: "What makes developer advocacy effective, and how to bridge the gap between product and community.",
		Abstract: `Advocacy is not marketing with a hoodie. It is a feedback loop:
the community's pain arriving at the roadmap with enough force to bend
it. This session covers how to build and defend that loop.`,
	},
	{
		Slug:        "building-with-webauthn-hands-on-workshop",
		Title:       "Building with WebAuthn: Hands-On Workshop",
		Type:        TypeWorkshop,
		Event:       "DDD Melbourne 2026",
		Date:        "2026-06-20",
		Description: "A 3-hour hands-on workshop building a complete passwordless auth system from scratch.",
		Abstract: `Bring a laptop. We start from an empty repo and finish with
registration, login, and account recovery, all without a password
column. Every step is committed so nobody gets left behind.`,
	},
	{
		Slug:        "securing-the-edge-auth-at-the-cdn-layer",
		Title:       "Securing the Edge: Auth at the CDN Layer",
		Type:        TypeTalk,
		Event:       "JSConf Australia 2026",
		Date:        "2026-08-12",
		Description: "Moving authentication decisions to the edge for faster, more resilient web applications.",
		Abstract: `Every auth round-trip to origin is latency your users feel. We
look at verifying sessions inside the CDN: what you can safely decide at
the edge, what you cannot, and how to fail closed when the edge is wrong.`,
	},
}

// Projects highlighted on the projects section.
var Projects = []Project{
	{
		Name:        "keywarden",
		Description: "Self-hosted WebAuthn relying party with pluggable storage backends.",
		Link:        "https://github.com/bendechrai/keywarden",
		Tech:        []string{"Go", "WebAuthn", "sqlite"},
	},
	{
		Name:        "talkdeck",
		Description: "Terminal-first presentation tool; slides as markdown, demos as panes.",
		Link:        "https://github.com/bendechrai/talkdeck",
		Tech:        []string{"Go", "bubbletea"},
	},
	{
		Name:        "lockpick-ble",
		Description: "Research toolkit for auditing Bluetooth smart-lock handshakes.",
		Link:        "https://github.com/bendechrai/lockpick-ble",
		Tech:        []string{"Rust", "BLE"},
	},
	{
		Name:        "edge-session",
		Description: "Reference implementation of CDN-layer session verification.",
		Link:        "https://github.com/bendechrai/edge-session",
		Tech:        []string{"TypeScript", "workers"},
	},
}

// ArticleBySlug looks an article up by its slug.
func ArticleBySlug(slug string) (Article, bool) {
	for _, a := range Articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return Article{}, false
}

// TalkBySlug looks a talk up by its slug.
func TalkBySlug(slug string) (Talk, bool) {
	for _, talk := range Talks {
		if talk.Slug == slug {
			return talk, true
		}
	}
	return Talk{}, false
}
