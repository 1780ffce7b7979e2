// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// IconSet is the fixed allowlist of names that qualify for the icon badge
// and the quiz icon bonus. Matched against Tender.Name exactly.
var IconSet = []string{"Canes", "Chick fil a", "Popeyes", "Kfc", "Albaik"}

// IsIcon reports whether a tender name is in the icon allowlist.
func IsIcon(name string) bool {
	for _, n := range IconSet {
		if n == name {
			return true
		}
	}
	return false
}

// PersonalityBlurbs maps tender ids to the quiz top-match personality text.
var PersonalityBlurbs = map[string]string{
	"albaik":           "Local legend energy. Garlic diplomacy with heat.",
	"canes":            "Ritual minimalist. One sauce, many dreams.",
	"chick-fil-a":      "Polished planner. Sauce taxonomy expert.",
	"popeyes":          "Crisp maximalist. Flavor spikes > small talk.",
	"kfc":              "Bucket traditionalist. Crunch historian.",
	"mcdonalds":        "Comfort optimizer. Predictability is a skill.",
	"burger-king":      "Budget rebel. Char drama enjoyer.",
	"nandos":           "Peri-peri tourist with loyalty perks.",
	"section-b":        "Premium crunch sommelier.",
	"fattboy":          "High-voltage chaos. Extra by default.",
	"texas-chicken":    "Straight shooter. Crunch without ceremony.",
	"salt":             "Minimalist aesthetic. Vibes per square inch.",
	"chicken-republic": "Bold spice, zero shyness.",
	"tndr":             "Sauce-forward tinkerer.",
	"tndr-cart":        "Street-smart crunch with personality.",
	"crispy-bucket":    "Party pack pragmatist.",
	"hardees":          "Old-school crunch, unbothered.",
	"wendys":           "Coupon core. Square and proud.",
	"rustic-grill":     "Premium vibes, patio philosophy.",
	"homemade":         "Cozy chaos at 3am. Your rules.",
}

// WildcardBlurb is the fallback personality text for tenders without an
// entry in PersonalityBlurbs.
const WildcardBlurb = "Wildcard unit. You defy neat categories."

// DenyList holds the substrings rejected (case-insensitively) in vote blurbs.
var DenyList = []string{
	"kill", "bomb", "nazi", "rape", "suicide", "terror", "<script", "http://", "https://",
	"hate", "stupid", "idiot", "dumb", "suck", "worst",
}

// BadgeDefinitions describes each badge symbol for display purposes.
var BadgeDefinitions = map[string]BadgeInfo{
	BadgeSpice:    {Name: "Spice Lord", Description: "Masters the art of heat"},
	BadgeValue:    {Name: "Budget Banger", Description: "Amazing value, unbeatable price"},
	BadgeComfort:  {Name: "Comfort Classic", Description: "Your go-to comfort choice"},
	BadgeIcon:     {Name: "Icon", Description: "Legendary status achieved"},
	BadgeWildcard: {Name: "Wildcard", Description: "Defies neat categories"},
	BadgeTryhard:  {Name: "Try-Hard", Description: "Dedication through repetition"},
}

// QuizQuestions are the six fixed prompts, in tag axis order.
var QuizQuestions = []QuizQuestion{
	{
		Question: "Heat tolerance",
		Options: []QuizOption{
			{Text: "Milk-only", Value: 0},
			{Text: "Medium salsa", Value: 1},
			{Text: "I drink hot sauce", Value: 2},
		},
	},
	{
		Question: "Crunch mood",
		Options: []QuizOption{
			{Text: "Pillow", Value: 0},
			{Text: "Balanced", Value: 1},
			{Text: "Shatter glass", Value: 2},
		},
	},
	{
		Question: "Budget mood",
		Options: []QuizOption{
			{Text: "Coupons", Value: 0},
			{Text: "Whatever", Value: 1},
			{Text: `"Surprise me"`, Value: 2},
		},
	},
	{
		Question: "Chaos level",
		Options: []QuizOption{
			{Text: "I plan my bites", Value: 0},
			{Text: "I vibe", Value: 1},
			{Text: "I freestyle with 3 sauces", Value: 2},
		},
	},
	{
		Question: "Share style",
		Options: []QuizOption{
			{Text: "Solo hunter", Value: 0},
			{Text: "I share sometimes", Value: 1},
			{Text: "I host platters", Value: 2},
		},
	},
	{
		Question: "Sauce identity",
		Options: []QuizOption{
			{Text: "Dry rub loyalist", Value: 0},
			{Text: "Classic dips", Value: 1},
			{Text: "Signature or nothing", Value: 2},
		},
	},
}

// PartnerArchetypes are the fixed personas for the partner match feature.
// List order breaks compatibility ties.
var PartnerArchetypes = []PartnerArchetype{
	{
		ID:    "budget-bae",
		Name:  "Budget Bae",
		Emoji: "💸",
		Blurb: "Always brings coupons and loves KFC value boxes. Will split a 10-piece with you and call it romance.",
		Tags:  TenderTags{Heat: 0, Crunch: 1, Price: 0, Comfort: 1, Share: 1, Sauce: 1},
	},
	{
		ID:    "spice-fiance",
		Name:  "Spice Fiancé",
		Emoji: "🔥",
		Blurb: "Can't date anyone who fears hot sauce. Judges your relationship potential by your ghost pepper tolerance.",
		Tags:  TenderTags{Heat: 2, Crunch: 1, Price: 1, Comfort: 2, Share: 1, Sauce: 2},
	},
	{
		ID:    "crispy-royalty",
		Name:  "Crispy Queen/King",
		Emoji: "👑",
		Blurb: "Obsessed with crunch, hates soggy breading. Will break up with you over a limp tender.",
		Tags:  TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 1, Share: 1, Sauce: 1},
	},
	{
		ID:    "comfort-companion",
		Name:  "Comfort Companion",
		Emoji: "🧈",
		Blurb: "Only eats tenders as comfort food at 2 AM. Perfect for Netflix binges and emotional eating sessions.",
		Tags:  TenderTags{Heat: 0, Crunch: 0, Price: 1, Comfort: 0, Share: 2, Sauce: 1},
	},
	{
		ID:    "signature-saucer",
		Name:  "Signature Saucer",
		Emoji: "🥫",
		Blurb: "Judges you entirely by your dip game. Has strong opinions about ranch vs honey mustard debates.",
		Tags:  TenderTags{Heat: 1, Crunch: 1, Price: 2, Comfort: 1, Share: 1, Sauce: 2},
	},
	{
		ID:    "chaos-catalyst",
		Name:  "Chaos Catalyst",
		Emoji: "🌪️",
		Blurb: "Mixes three sauces minimum and eats tenders with a fork. Unpredictable but never boring.",
		Tags:  TenderTags{Heat: 2, Crunch: 2, Price: 2, Comfort: 2, Share: 2, Sauce: 2},
	},
	{
		ID:    "minimalist-mate",
		Name:  "Minimalist Mate",
		Emoji: "🤍",
		Blurb: "Dry rub loyalist who finds sauce 'too complicated'. Appreciates the simple things in tender life.",
		Tags:  TenderTags{Heat: 0, Crunch: 1, Price: 0, Comfort: 0, Share: 0, Sauce: 0},
	},
	{
		ID:    "premium-partner",
		Name:  "Premium Partner",
		Emoji: "✨",
		Blurb: "Only the finest artisanal tenders will do. Expects truffle oil and gold leaf on everything.",
		Tags:  TenderTags{Heat: 1, Crunch: 1, Price: 2, Comfort: 0, Share: 2, Sauce: 2},
	},
}

// Partner compatibility tier copy.
const (
	PartnerCopyHigh   = "Congrats, you've found your Sauce-mate for life."
	PartnerCopyMedium = "A crunchy future awaits—just watch the spice levels."
	PartnerCopyLow    = "Opposites snack-tract, maybe not long-term."
)

// SeedTenders is the fixed startup list. Personal fields (sub, overall,
// tries, notes) start zeroed and may be overridden by persisted data.
var SeedTenders = []Tender{
	{ID: "wister", Name: "Wister", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 1, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "canes", Name: "Canes", Tags: TenderTags{Heat: 0, Crunch: 0, Price: 1, Comfort: 0, Share: 1, Sauce: 2}},
	{ID: "kfc", Name: "Kfc", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 0, Share: 1, Sauce: 1}},
	{ID: "popeyes", Name: "Popeyes", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 1, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "chkn", Name: "Chkn", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 1, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "crispers", Name: "Crispers", Tags: TenderTags{Heat: 0, Crunch: 1, Price: 1, Comfort: 0, Share: 1, Sauce: 1}},
	{ID: "chicken-republic", Name: "Chicken republic", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 0, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "hardees", Name: "Hardees", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 1, Share: 0, Sauce: 1}},
	{ID: "jan-burger", Name: "Jan burger", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 1, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "fryd-chicken", Name: "Fryd chicken", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 1, Comfort: 2, Share: 1, Sauce: 1}},
	{ID: "chick-out", Name: "Chick out", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "japang", Name: "Japang", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 2, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "salt", Name: "SALT", Tags: TenderTags{Heat: 0, Crunch: 1, Price: 2, Comfort: 0, Share: 1, Sauce: 1}},
	{ID: "wendys", Name: "Wendys", Tags: TenderTags{Heat: 0, Crunch: 1, Price: 0, Comfort: 0, Share: 0, Sauce: 1}},
	{ID: "rustic-grill", Name: "Rustic grill", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 2, Comfort: 0, Share: 1, Sauce: 1}},
	{ID: "mcdonalds", Name: "McDonald's", Tags: TenderTags{Heat: 0, Crunch: 0, Price: 0, Comfort: 0, Share: 0, Sauce: 1}},
	{ID: "albaik", Name: "Albaik", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 0, Comfort: 0, Share: 2, Sauce: 2}},
	{ID: "al-tazij", Name: "Al tazij", Tags: TenderTags{Heat: 0, Crunch: 0, Price: 1, Comfort: 0, Share: 1, Sauce: 0}},
	{ID: "mumbo", Name: "Mumbo", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 1, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "nandos", Name: "Nandos", Tags: TenderTags{Heat: 2, Crunch: 0, Price: 2, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "tndr", Name: "Tndr", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "smpl-burger", Name: "Smpl burger", Tags: TenderTags{Heat: 1, Crunch: 1, Price: 1, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "tndr-cart", Name: "Tndr cart", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 0, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "crispy-bucket", Name: "Crispy bucket", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 0, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "burger-king", Name: "Burger King", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 0, Comfort: 1, Share: 0, Sauce: 1}},
	{ID: "homemade", Name: "Homemade", Tags: TenderTags{Heat: 0, Crunch: 1, Price: 0, Comfort: 0, Share: 2, Sauce: 0}},
	{ID: "section-b", Name: "Section-B", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 2, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "thndr", Name: "Thndr", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 2, Share: 1, Sauce: 2}},
	{ID: "crusted", Name: "Crusted", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 1, Comfort: 1, Share: 1, Sauce: 2}},
	{ID: "texas-chicken", Name: "Texas chicken", Tags: TenderTags{Heat: 1, Crunch: 2, Price: 0, Comfort: 1, Share: 1, Sauce: 1}},
	{ID: "hoti", Name: "Hoti", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 1, Comfort: 2, Share: 1, Sauce: 1}},
	{ID: "fattboy", Name: "Fattboy", Tags: TenderTags{Heat: 2, Crunch: 2, Price: 2, Comfort: 2, Share: 2, Sauce: 2}},
	{ID: "chick-fil-a", Name: "Chick fil a", Tags: TenderTags{Heat: 0, Crunch: 1, Price: 1, Comfort: 0, Share: 1, Sauce: 2}},
}
