package generator

import "github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"

// grammarCategories is the full catalog of grammar skills the scheduler
// tracks, keyed by category id. Static data, never mutated at runtime.
var grammarCategories = map[string]entities.GrammarCategory{
	// A1
	"present-simple-be":   {ID: "present-simple-be", Name: "Present Simple (to be)", Level: entities.LevelA1, Description: "I am, you are, he/she is"},
	"present-simple-have": {ID: "present-simple-have", Name: "Present Simple (to have)", Level: entities.LevelA1, Description: "I have, she has"},
	"present-simple":      {ID: "present-simple", Name: "Present Simple", Level: entities.LevelA1, Description: "Regular verbs in present tense"},
	"basic-questions":     {ID: "basic-questions", Name: "Basic Questions", Level: entities.LevelA1, Description: "Where, what, do you...?"},
	"greetings":           {ID: "greetings", Name: "Greetings & Basics", Level: entities.LevelA1, Description: "Hello, thank you, please"},
	"numbers":             {ID: "numbers", Name: "Numbers & Counting", Level: entities.LevelA1, Description: "Cardinal numbers"},

	// A2
	"past-simple":        {ID: "past-simple", Name: "Past Simple", Level: entities.LevelA2, Description: "Regular and irregular past tense"},
	"future-going-to":    {ID: "future-going-to", Name: "Future (going to)", Level: entities.LevelA2, Description: "Plans and intentions"},
	"present-continuous": {ID: "present-continuous", Name: "Present Continuous", Level: entities.LevelA2, Description: "Actions happening now"},
	"comparatives":       {ID: "comparatives", Name: "Comparatives", Level: entities.LevelA2, Description: "More than, bigger than"},
	"modals-basic":       {ID: "modals-basic", Name: "Modal Verbs (basic)", Level: entities.LevelA2, Description: "Can, must, should, have to"},
	"frequency-adverbs":  {ID: "frequency-adverbs", Name: "Frequency Adverbs", Level: entities.LevelA2, Description: "Always, usually, sometimes"},
	"connectors-basic":   {ID: "connectors-basic", Name: "Basic Connectors", Level: entities.LevelA2, Description: "And, but, because, so"},

	// B1
	"present-perfect":        {ID: "present-perfect", Name: "Present Perfect", Level: entities.LevelB1, Description: "Have done, has been"},
	"past-continuous":        {ID: "past-continuous", Name: "Past Continuous", Level: entities.LevelB1, Description: "Was doing, were playing"},
	"first-conditional":      {ID: "first-conditional", Name: "First Conditional", Level: entities.LevelB1, Description: "If + present, will + verb"},
	"opinions":               {ID: "opinions", Name: "Expressing Opinions", Level: entities.LevelB1, Description: "I think, I believe, in my opinion"},
	"reported-speech-basic":  {ID: "reported-speech-basic", Name: "Reported Speech (basic)", Level: entities.LevelB1, Description: "She said that..."},
	"purpose-reason":         {ID: "purpose-reason", Name: "Purpose & Reason", Level: entities.LevelB1, Description: "To + verb, for + noun"},
	"passive-basic":          {ID: "passive-basic", Name: "Passive Voice (basic)", Level: entities.LevelB1, Description: "Was made, is spoken"},
	"relative-clauses-basic": {ID: "relative-clauses-basic", Name: "Relative Clauses (basic)", Level: entities.LevelB1, Description: "Who, which, where, when"},

	// B2
	"second-conditional":        {ID: "second-conditional", Name: "Second Conditional", Level: entities.LevelB2, Description: "If + past, would + verb"},
	"third-conditional":         {ID: "third-conditional", Name: "Third Conditional", Level: entities.LevelB2, Description: "If + past perfect, would have"},
	"past-perfect":              {ID: "past-perfect", Name: "Past Perfect", Level: entities.LevelB2, Description: "Had done, had been"},
	"wishes":                    {ID: "wishes", Name: "Wishes & Regrets", Level: entities.LevelB2, Description: "I wish, if only, I'd rather"},
	"modals-perfect":            {ID: "modals-perfect", Name: "Modal Perfects", Level: entities.LevelB2, Description: "Should have, must have, might have"},
	"relative-clauses-advanced": {ID: "relative-clauses-advanced", Name: "Relative Clauses (advanced)", Level: entities.LevelB2, Description: "Whose, in which, the reason why"},
	"passive-advanced":          {ID: "passive-advanced", Name: "Passive Voice (advanced)", Level: entities.LevelB2, Description: "Is believed to, is being done"},
	"abstract-concepts":         {ID: "abstract-concepts", Name: "Abstract Discussion", Level: entities.LevelB2, Description: "Discussing abstract ideas"},

	// C1
	"mixed-conditionals":  {ID: "mixed-conditionals", Name: "Mixed Conditionals", Level: entities.LevelC1, Description: "Combining conditional types"},
	"inversion":           {ID: "inversion", Name: "Inversion", Level: entities.LevelC1, Description: "Never have I, not only did"},
	"cleft-sentences":     {ID: "cleft-sentences", Name: "Cleft Sentences", Level: entities.LevelC1, Description: "What I need is, It was X that"},
	"nuanced-expressions": {ID: "nuanced-expressions", Name: "Nuanced Expressions", Level: entities.LevelC1, Description: "Subtle meanings and hedging"},
	"hedging-politeness":  {ID: "hedging-politeness", Name: "Hedging & Politeness", Level: entities.LevelC1, Description: "I was wondering, would you mind"},
	"idioms":              {ID: "idioms", Name: "Idiomatic Expressions", Level: entities.LevelC1, Description: "Common idioms and phrases"},
	"complex-reasoning":   {ID: "complex-reasoning", Name: "Complex Reasoning", Level: entities.LevelC1, Description: "Given that, in light of"},

	// C2
	"literary-formal":     {ID: "literary-formal", Name: "Literary & Formal", Level: entities.LevelC2, Description: "High register expressions"},
	"rare-structures":     {ID: "rare-structures", Name: "Rare Structures", Level: entities.LevelC2, Description: "Uncommon grammatical forms"},
	"philosophical":       {ID: "philosophical", Name: "Philosophical Language", Level: entities.LevelC2, Description: "Abstract philosophical discussion"},
	"complex-syntax":      {ID: "complex-syntax", Name: "Complex Syntax", Level: entities.LevelC2, Description: "Sophisticated sentence structures"},
	"argumentation":       {ID: "argumentation", Name: "Sophisticated Argumentation", Level: entities.LevelC2, Description: "Academic argument structures"},
	"literary-references": {ID: "literary-references", Name: "Literary References", Level: entities.LevelC2, Description: "Allusions and metaphors"},

	// Conversation response skills.
	"greetings-responses":       {ID: "greetings-responses", Name: "Greeting Responses", Level: entities.LevelA1, Description: "Responding to greetings"},
	"basic-questions-responses": {ID: "basic-questions-responses", Name: "Basic Question Responses", Level: entities.LevelA1, Description: "Answering simple questions"},
	"polite-expressions":        {ID: "polite-expressions", Name: "Polite Expressions", Level: entities.LevelA1, Description: "Please, thank you, sorry"},
	"yes-no-responses":          {ID: "yes-no-responses", Name: "Yes/No Responses", Level: entities.LevelA2, Description: "Answering yes/no questions"},
	"preference-responses":      {ID: "preference-responses", Name: "Expressing Preferences", Level: entities.LevelA2, Description: "Likes, dislikes, preferences"},
	"invitation-responses":      {ID: "invitation-responses", Name: "Invitation Responses", Level: entities.LevelA2, Description: "Accepting/declining invitations"},
	"opinion-responses":         {ID: "opinion-responses", Name: "Opinion Responses", Level: entities.LevelB1, Description: "Agreeing, disagreeing, elaborating"},
	"suggestion-responses":      {ID: "suggestion-responses", Name: "Suggestion Responses", Level: entities.LevelB1, Description: "Responding to suggestions"},
	"clarification-responses":   {ID: "clarification-responses", Name: "Asking for Clarification", Level: entities.LevelB1, Description: "When you don't understand"},
	"emotion-responses":         {ID: "emotion-responses", Name: "Emotional Responses", Level: entities.LevelB1, Description: "Responding to news/emotions"},
	"negotiation-responses":     {ID: "negotiation-responses", Name: "Negotiation", Level: entities.LevelB2, Description: "Compromising, counter-proposing"},
	"persuasion-responses":      {ID: "persuasion-responses", Name: "Persuasion", Level: entities.LevelB2, Description: "Convincing others"},
	"diplomatic-responses":      {ID: "diplomatic-responses", Name: "Diplomatic Responses", Level: entities.LevelC1, Description: "Tactful, nuanced responses"},
}

// Category returns the catalog entry for an id.
func Category(id string) (entities.GrammarCategory, bool) {
	c, ok := grammarCategories[id]
	return c, ok
}

// Categories returns the whole catalog.
func Categories() map[string]entities.GrammarCategory {
	return grammarCategories
}

// CategoriesForLevel returns every category of one CEFR level.
func CategoriesForLevel(level entities.Level) []entities.GrammarCategory {
	var out []entities.GrammarCategory
	for _, id := range categoryOrder {
		if c := grammarCategories[id]; c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// categoryOrder keeps level listings deterministic; map iteration is not.
var categoryOrder = []string{
	"present-simple-be", "present-simple-have", "present-simple", "basic-questions", "greetings", "numbers",
	"past-simple", "future-going-to", "present-continuous", "comparatives", "modals-basic", "frequency-adverbs", "connectors-basic",
	"present-perfect", "past-continuous", "first-conditional", "opinions", "reported-speech-basic", "purpose-reason", "passive-basic", "relative-clauses-basic",
	"second-conditional", "third-conditional", "past-perfect", "wishes", "modals-perfect", "relative-clauses-advanced", "passive-advanced", "abstract-concepts",
	"mixed-conditionals", "inversion", "cleft-sentences", "nuanced-expressions", "hedging-politeness", "idioms", "complex-reasoning",
	"literary-formal", "rare-structures", "philosophical", "complex-syntax", "argumentation", "literary-references",
	"greetings-responses", "basic-questions-responses", "polite-expressions",
	"yes-no-responses", "preference-responses", "invitation-responses",
	"opinion-responses", "suggestion-responses", "clarification-responses", "emotion-responses",
	"negotiation-responses", "persuasion-responses",
	"diplomatic-responses",
}
