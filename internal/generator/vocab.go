package generator

// vocab holds the pools the sentence templates draw from. Static data.
var vocab = map[string][]string{
	"names": {"Maria", "John", "Sofia", "Michael", "Emma", "Carlos", "Anna", "James",
		"Lisa", "David", "Elena", "Thomas", "Sarah", "Daniel", "Laura", "Robert",
		"Julia", "William", "Clara", "Peter"},

	"professions": {"teacher", "doctor", "engineer", "artist", "chef", "lawyer",
		"nurse", "architect", "musician", "writer", "scientist", "photographer",
		"designer", "pilot", "journalist", "professor"},

	"relations": {"mother", "father", "sister", "brother", "friend", "colleague",
		"neighbor", "boss", "grandmother", "grandfather", "aunt", "uncle", "cousin"},

	"countries": {"Spain", "France", "Germany", "Italy", "Japan", "Brazil", "Mexico",
		"Canada", "Australia", "England", "Portugal", "Argentina", "China", "Sweden"},

	"cities": {"Paris", "London", "Tokyo", "New York", "Berlin", "Rome", "Madrid",
		"Sydney", "Toronto", "Amsterdam", "Barcelona", "Vienna", "Prague", "Lisbon"},

	"places": {"park", "beach", "museum", "restaurant", "library", "hospital",
		"airport", "station", "supermarket", "gym", "cinema", "theater", "hotel",
		"office", "school", "university", "market", "pharmacy", "bank"},

	"rooms": {"kitchen", "bedroom", "bathroom", "living room", "garden",
		"balcony", "garage", "basement", "attic", "dining room", "office",
		"hallway", "terrace", "patio"},

	"objects": {"book", "phone", "computer", "bag", "key", "wallet", "umbrella",
		"glasses", "watch", "camera", "laptop", "newspaper", "letter", "suitcase",
		"bicycle", "guitar", "painting", "plant", "lamp", "chair"},

	"foods": {"pizza", "pasta", "sushi", "salad", "soup", "bread", "rice", "chicken",
		"fish", "vegetables", "fruit", "cheese", "sandwich", "cake", "chocolate",
		"coffee", "tea", "juice", "wine", "water"},

	"clothing": {"shirt", "dress", "jacket", "coat", "shoes", "hat", "scarf",
		"jeans", "sweater", "suit", "skirt", "boots"},

	"animals": {"dog", "cat", "bird", "horse", "fish", "rabbit", "elephant", "lion",
		"tiger", "bear", "monkey", "dolphin", "turtle", "owl", "wolf", "fox"},

	"adjPositive": {"beautiful", "wonderful", "excellent", "amazing", "fantastic",
		"great", "lovely", "delicious", "comfortable", "interesting", "exciting"},

	"adjNegative": {"terrible", "awful", "horrible", "boring", "disappointing",
		"annoying", "frustrating", "exhausting", "confusing", "expensive"},

	"adjNeutral": {"big", "small", "old", "new", "long", "short", "tall", "young",
		"quiet", "loud", "fast", "slow", "hot", "cold", "warm", "dark", "bright"},

	"colors": {"red", "blue", "green", "yellow", "black", "white", "brown",
		"orange", "purple", "pink", "gray", "silver"},

	"emotions": {"happy", "sad", "angry", "excited", "nervous", "tired", "bored",
		"surprised", "confused", "worried", "relaxed", "proud", "grateful"},

	"timePast": {"yesterday", "last week", "last month", "last year",
		"two days ago", "a week ago", "last night", "last summer"},

	"timeFuture": {"tomorrow", "next week", "next month", "next year",
		"in two days", "soon", "next summer", "this weekend"},

	"frequency": {"always", "usually", "often", "sometimes", "rarely", "never",
		"every day", "once a week", "occasionally"},

	"duration": {"for an hour", "for two days", "for a week", "for three months",
		"for years", "since morning", "since last year", "all day"},

	"smallNumbers": {"two", "three", "four", "five", "six", "seven", "eight",
		"nine", "ten"},

	"opinionIntro": {"I think", "I believe", "In my opinion", "It seems to me",
		"I feel that", "From my point of view"},

	"abstractTopics": {"education", "technology", "environment", "health",
		"economy", "culture", "society", "science", "art", "history"},

	"abstractConcepts": {"freedom", "equality", "justice", "progress", "success",
		"happiness", "creativity", "responsibility", "opportunity", "tradition"},
}
