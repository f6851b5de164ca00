package engine

import (
	"regexp"

	"phishguard/internal/domain/models"
)

// MessageRule is one named rule in the message table. A rule fires at most
// once per analysis: the first pattern that matches wins and the rest are
// skipped, so synonym patterns cannot double-count.
type MessageRule struct {
	Name     string
	Patterns []*regexp.Regexp
	Weight   int
	Flag     string
}

// messageRules is evaluated in declaration order against the lowercased,
// normalized message text.
var messageRules = []MessageRule{
	{
		Name: "urgency",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(urgent|immediately|right now|act now|hurry|last chance|limited time|expires? today|don'?t delay)\b`),
			regexp.MustCompile(`(तुरंत|अभी|जल्दी|आखिरी मौका)`),
		},
		Weight: 15,
		Flag:   models.FlagUrgencyPressure,
	},
	{
		Name: "otp_kyc",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(otp|kyc|verify|verification|cvv|pin|password)\b`),
			regexp.MustCompile(`(पासवर्ड)`),
			regexp.MustCompile(`\b(share|send|provide|enter).{0,20}(otp|code|pin)\b`),
		},
		Weight: 20,
		Flag:   models.FlagOTPKYCRequest,
	},
	{
		Name: "account_threat",
		Patterns: []*regexp.Regexp{
			// stems on purpose: "blocked", "suspended", "deactivated"
			regexp.MustCompile(`\b(account|खाता).{0,20}(block|suspend|close|deactivat|बंद|ब्लॉक)`),
			regexp.MustCompile(`\b(block|suspend|deactivat).{0,20}(account|खाता)`),
		},
		Weight: 18,
		Flag:   models.FlagAccountThreat,
	},
	{
		Name: "lottery_reward",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(congratulations|winner|won|lottery|prize|reward|gift|cash prize)\b`),
			regexp.MustCompile(`(इनाम|जीत)`),
			regexp.MustCompile(`\b(claim|collect).{0,20}(prize|reward|money)\b`),
			regexp.MustCompile(`\b(free|मुफ्त).{0,10}(gift|iphone|laptop|money)\b`),
		},
		Weight: 20,
		Flag:   models.FlagLotteryRewardBait,
	},
	{
		Name: "job_scam",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(earn|income|salary).{0,20}(lakhs?|crores?|per day|daily|weekly)\b`),
			regexp.MustCompile(`\b(work from home|wfh).{0,20}(earn|income|money)\b`),
			regexp.MustCompile(`\b(no interview|direct joining|immediate joining)\b`),
		},
		Weight: 18,
		Flag:   models.FlagSuspiciousJobOffer,
	},
	{
		Name: "authority",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(rbi|reserve bank|income tax|it department|police|cyber cell|sbi|hdfc|icici|axis)\b`),
			regexp.MustCompile(`\b(government).{0,20}(notice|warning|alert)\b`),
			regexp.MustCompile(`(सरकार|बैंक).{0,20}(notice|warning|alert)`),
		},
		Weight: 15,
		Flag:   models.FlagAuthorityImpersonation,
	},
	{
		Name: "money_request",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(transfer|send|pay).{0,20}(money|amount|rs|₹|rupees)\b`),
			regexp.MustCompile(`\b(processing fee|registration fee|advance payment)\b`),
		},
		Weight: 18,
		Flag:   models.FlagMoneyRequest,
	},
	{
		Name: "poor_grammar",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(!!!|\?\?\?|\.\.\.\.+)`),
			regexp.MustCompile(`\b(plz|pls|ur|u r|bcoz|coz|dis|dat|dnt)\b`),
		},
		Weight: 8,
		Flag:   models.FlagPoorGrammar,
	},
	{
		Name: "embedded_link",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`https?://[^\s]+`),
			regexp.MustCompile(`bit\.ly|tinyurl|short\.link`),
		},
		Weight: 10,
		Flag:   models.FlagContainsLink,
	},
}

// URL rule constants and lists. All matching happens on the lowercased URL.
const (
	weightIPBasedURL     = 25
	weightPunycode       = 20
	weightUserinfo       = 18
	weightNoHTTPS        = 8
	weightSuspiciousTLD  = 18
	weightShortener      = 15
	weightBrandSpoof     = 22
	weightManySubdomains = 12
	weightLongURL        = 10
	weightRandomString   = 12
	weightPathToken      = 12
	weightWeirdChars     = 6
	subdomainThreshold   = 3
	longURLThreshold     = 100
)

var (
	ipHostPattern    = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	randomRunPattern = regexp.MustCompile(`[a-z0-9]{15,}`)
	weirdCharPattern = regexp.MustCompile(`[^a-z0-9.-]`)

	suspiciousTLDs = []string{
		".xyz", ".top", ".click", ".info", ".tk", ".ml",
		".ga", ".cf", ".gq", ".buzz", ".work", ".loan",
	}

	shortenerDomains = []string{
		"bit.ly", "tinyurl.com", "short.link", "goo.gl",
		"t.co", "ow.ly", "is.gd", "buff.ly",
	}

	spoofableBrands = []string{
		"google", "facebook", "amazon", "paypal", "flipkart", "paytm",
		"phonepe", "gpay", "sbi", "hdfc", "icici", "axis",
		"netflix", "whatsapp", "instagram",
	}

	suspiciousPathTokens = []string{
		"verify", "confirm", "login", "secure", "account", "update",
		"bank", "payment", "refund", "prize", "claim", "click",
		"authenticate", "signin", "token",
	}
)

// Phone rule constants
const (
	weightForeignCode      = 15
	weightLengthIssue      = 12
	weightInvalidPattern   = 20
	weightRepeatedDigits   = 15
	weightRepeatedSequence = 12
	minPhoneDigits         = 10
	maxPhoneDigits         = 15
)

// foreignCountryCodes are calling codes flagged as non-domestic. Domestic
// numbers are Indian (+91 or bare 10-digit mobiles starting 6-9).
var foreignCountryCodes = []string{"+1", "+44", "+234", "+233", "+254", "+880", "+92"}

// deleetPairs maps common digit-for-letter substitutions back to letters
// to catch lookalike spellings like paypa1 or g00gle.
var deleetPairs = [][2]byte{
	{'0', 'o'}, {'1', 'l'}, {'3', 'e'}, {'5', 's'},
	{'4', 'a'}, {'7', 't'}, {'8', 'b'},
}

func deleet(s string) string {
	b := []byte(s)
	for i, c := range b {
		for _, p := range deleetPairs {
			if c == p[0] {
				b[i] = p[1]
				break
			}
		}
	}
	return string(b)
}

// officialDomains returns the legitimate domain suffixes for a brand
func officialDomains(brand string) []string {
	return []string{
		brand + ".com",
		brand + ".in",
		brand + ".co.in",
		brand + ".org",
	}
}
