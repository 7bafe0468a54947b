package services

import (
	"strings"

	"campus-faq-bot/models"
)

// FaqEntry is one answerable question category. Patterns are keyword triggers
// across languages; Answers may be partial, with the English text acting as
// the fallback for missing languages. The table is loaded once and read-only.
type FaqEntry struct {
	Intent   string
	Topic    string
	Patterns []string
	Answers  map[models.LanguageCode]string
}

// Answer returns the localized answer for lang, falling back to English.
func (e *FaqEntry) Answer(lang models.LanguageCode) string {
	if text, ok := e.Answers[lang]; ok && text != "" {
		return text
	}
	return e.Answers[models.LangEnglish]
}

// faqEntries is the campus FAQ dataset. Order matters: the matcher breaks
// exact score ties in favor of later entries.
var faqEntries = []FaqEntry{
	{
		Intent: "fees_deadline",
		Topic:  "fee_deadlines",
		Patterns: []string{
			"fee deadline",
			"fees last date",
			"शुल्क जमा",
			"फीस आखिरी",
			"फीस की अंतिम तारीख",
			"फीस कब",
			"fees kab",
			"ফি শেষ তারিখ",
			"शुल्क", // mr/hi
			"शुल्क अंतिम",
			"கட்டணம் கடைசி தேதி",
		},
		Answers: map[models.LanguageCode]string{
			models.LangEnglish: "Upcoming fee deadlines: Semester I – 15 Aug, Semester II – 15 Jan. Pay online via the student portal.",
			models.LangHindi:   "आगामी शुल्क अंतिम तिथियाँ: सेमेस्टर I – 15 अगस्त, सेमेस्टर II – 15 जनवरी। भुगतान छात्र पोर्टल पर ऑनलाइन करें।",
			models.LangBengali: "ফি জমার শেষ তারিখ: সেমেস্টার I – ১৫ অগাস্ট, সেমেস্টার II – ১৫ জানুয়ারি। স্টুডেন্ট পোর্টালের মাধ্যমে পরিশোধ করুন।",
			models.LangMarathi: "शुल्क भरणाची अंतिम तारीख: सेमेस्टर I – १५ ऑगस्ट, सेमेस्टर II – १५ जानेवारी. विद्यार्थी पोर्टलवर ऑनलाइन भरा.",
			models.LangTamil:   "கட்டணம் செலுத்தும் கடைசி தேதி: செமஸ்டர் I – ஆகஸ்ட் 15, செமஸ்டர் II – ஜனவரி 15. மாணவர் போர்டலில் ஆன்லைனில் செலுத்தவும்.",
		},
	},
	{
		Intent: "scholarship_forms",
		Topic:  "scholarships",
		Patterns: []string{
			"scholarship",
			"scholarship form",
			"वृत्ति",
			"स्कॉलरशिप",
			"বৃত্তি",
			"शिष्यवृत्ती",
			"உதவித்தொகை",
		},
		Answers: map[models.LanguageCode]string{
			models.LangEnglish: "Scholarship forms are available on the portal > Finance > Scholarships. Submit before 30 Sept with income certificate.",
			models.LangHindi:   "स्कॉलरशिप फॉर्म पोर्टल > वित्त > स्कॉलरशिप में उपलब्ध हैं। आय प्रमाण पत्र के साथ 30 सितम्बर से पहले जमा करें।",
			models.LangBengali: "স্কলারশিপ ফর্ম পোর্টাল > Finance > Scholarships-এ পাওয়া যায়। আয়ের সনদসহ ৩০ সেপ্টেম্বরের মধ্যে জমা দিন।",
			models.LangMarathi: "शिष्यवृत्ती फॉर्म पोर्टल > Finance > Scholarships येथे उपलब्ध आहेत. उत्पन्न प्रमाणपत्रासह ३० सप्टेंबरपूर्वी सादर करा.",
			models.LangTamil:   "உதவித்தொகை படிவங்கள் போர்டல் > Finance > Scholarships பகுதியில் உள்ளன. வருமானச் சான்றுடன் செப் 30க்கு முன் சமர்ப்பிக்கவும்.",
		},
	},
	{
		Intent: "timetable_change",
		Topic:  "timetable",
		Patterns: []string{
			"timetable",
			"class timings",
			"समय सारिणी",
			"टाइमटेबल",
			"সময়সূচী",
			"वेळापत्रक",
			"நேர அட்டவணை",
		},
		Answers: map[models.LanguageCode]string{
			models.LangEnglish: "Timetable updates are posted daily at 7am on the portal dashboard and the notice board channel.",
			models.LangHindi:   "समय सारिणी अपडेट रोज सुबह 7 बजे पोर्टल डैशबोर्ड और नोटिस बोर्ड चैनल पर पोस्ट किए जाते हैं।",
			models.LangBengali: "টাইমটেবিল আপডেট প্রতিদিন সকাল ৭টায় পোর্টাল ড্যাশবোর্ড এবং নোটিস বোর্ড চ্যানেলে পোস্ট হয়।",
			models.LangMarathi: "वेळापत्रकातील अद्यतने दररोज सकाळी ७ वाजता पोर्टल डॅशबोर्ड आणि नोटिस बोर्ड चॅनेलवर पोस्ट होतात.",
			models.LangTamil:   "நேர அட்டவணை புதுப்பிப்புகள் தினமும் காலை 7 மணிக்கு போர்டல் டாஷ்போர்டு மற்றும் அறிவிப்பு சேனலில் இடப்படுகின்றன.",
		},
	},
}

// fallbackAnswers are the fixed "could not find an answer" messages shown
// when a turn escalates to a human.
var fallbackAnswers = map[models.LanguageCode]string{
	models.LangEnglish: "I couldn't find an exact answer. Please rephrase or request human help.",
	models.LangHindi:   "सटीक उत्तर नहीं मिला। कृपया प्रश्न बदलकर पूछें या मानव सहायता का अनुरोध करें।",
	models.LangBengali: "সঠিক উত্তর পাওয়া যায়নি। অনুগ্রহ করে প্রশ্নটি বদলে জিজ্ঞাসা করুন বা মানব সহায়তা চান।",
	models.LangMarathi: "तंतोतंत उत्तर सापडले नाही. कृपया प्रश्न पुन्हा मांडावा किंवा मानवी मदत मागा.",
	models.LangTamil:   "சரியான பதில் கிடைக்கவில்லை. தயவு செய்து கேள்வியை மாற்றி கேளுங்கள் அல்லது மனித உதவியை கோருங்கள்.",
}

// FallbackAnswer returns the localized escalation message.
func FallbackAnswer(lang models.LanguageCode) string {
	if text, ok := fallbackAnswers[lang]; ok {
		return text
	}
	return fallbackAnswers[models.LangEnglish]
}

// MatchResult is the matcher outcome for one utterance. Intent and Topic are
// empty when nothing in the table scored at all.
type MatchResult struct {
	Intent     string
	Topic      string
	Confidence float64
}

// Scorer rates one FAQ entry against an already lower-cased utterance. It is
// an interface so the keyword scorer can be swapped for a tokenized or
// weighted strategy without touching the chat orchestration.
type Scorer interface {
	Score(lowered string, entry *FaqEntry) int
}

// KeywordScorer counts how many of an entry's patterns occur as
// case-insensitive substrings of the utterance. No stemming, no
// tokenization: a keyword embedded inside a longer word still counts.
type KeywordScorer struct{}

func (KeywordScorer) Score(lowered string, entry *FaqEntry) int {
	score := 0
	for _, p := range entry.Patterns {
		if strings.Contains(lowered, strings.ToLower(p)) {
			score++
		}
	}
	return score
}

// FaqMatcher scores utterances against the FAQ table.
type FaqMatcher struct {
	entries []FaqEntry
	scorer  Scorer
}

// NewFaqMatcher builds a matcher over the built-in campus dataset.
func NewFaqMatcher() *FaqMatcher {
	return &FaqMatcher{entries: faqEntries, scorer: KeywordScorer{}}
}

// NewFaqMatcherWith builds a matcher over a custom table and scorer.
func NewFaqMatcherWith(entries []FaqEntry, scorer Scorer) *FaqMatcher {
	return &FaqMatcher{entries: entries, scorer: scorer}
}

// Match scores every entry and returns the best one. Ties on raw keyword
// count go to the later entry in table order. Confidence is min(1, score/2):
// two keyword hits already saturate it. Zero hits everywhere yields a zero
// MatchResult.
func (m *FaqMatcher) Match(utterance string) MatchResult {
	lowered := strings.ToLower(utterance)

	var best MatchResult
	bestScore := 0
	for i := range m.entries {
		score := m.scorer.Score(lowered, &m.entries[i])
		if score > 0 && score >= bestScore {
			bestScore = score
			best = MatchResult{
				Intent:     m.entries[i].Intent,
				Topic:      m.entries[i].Topic,
				Confidence: confidenceFor(score),
			}
		}
	}
	return best
}

// EntryByIntent looks up an entry by its intent identifier.
func (m *FaqMatcher) EntryByIntent(intent string) (*FaqEntry, bool) {
	for i := range m.entries {
		if m.entries[i].Intent == intent {
			return &m.entries[i], true
		}
	}
	return nil, false
}

func confidenceFor(score int) float64 {
	c := float64(score) / 2
	if c > 1 {
		return 1
	}
	return c
}
