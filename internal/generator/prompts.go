package generator

import "github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"

// Prompt is a conversational opener for response practice. Responses are
// acceptable model answers; Keywords earn a bonus when they show up in
// the learner's reply.
type Prompt struct {
	Prompt      string
	RespondWith string
	Responses   []string
	Grammar     []string
	Keywords    []string
}

var conversationPrompts = map[entities.Level][]Prompt{
	entities.LevelA1: {
		{
			Prompt:      "Hello! How are you?",
			RespondWith: "Say you're fine and return the greeting",
			Responses:   []string{"I'm fine, thank you. And you?", "I'm good, thanks! How are you?", "Fine, thanks. And you?", "Good, thank you!"},
			Grammar:     []string{"greetings-responses"},
			Keywords:    []string{"fine", "good", "thanks", "thank", "you"},
		},
		{
			Prompt:      "Good morning!",
			RespondWith: "Return the greeting",
			Responses:   []string{"Good morning!", "Good morning! How are you?", "Morning!"},
			Grammar:     []string{"greetings-responses"},
			Keywords:    []string{"morning", "good"},
		},
		{
			Prompt:      "Nice to meet you.",
			RespondWith: "Say it's nice to meet them too",
			Responses:   []string{"Nice to meet you too.", "Pleased to meet you.", "Nice to meet you as well.", "The pleasure is mine."},
			Grammar:     []string{"greetings-responses", "polite-expressions"},
			Keywords:    []string{"nice", "meet", "pleasure", "pleased"},
		},
		{
			Prompt:      "What is your name?",
			RespondWith: "Tell them your name (use any name)",
			Responses:   []string{"My name is Maria.", "I'm John.", "I am called Sofia.", "My name's Alex."},
			Grammar:     []string{"basic-questions-responses", "present-simple-be"},
			Keywords:    []string{"name", "is", "am", "I'm", "called"},
		},
		{
			Prompt:      "Where are you from?",
			RespondWith: "Say where you are from (use any country/city)",
			Responses:   []string{"I'm from Spain.", "I am from New York.", "I come from Germany.", "I'm from Tokyo."},
			Grammar:     []string{"basic-questions-responses", "present-simple-be"},
			Keywords:    []string{"from", "I'm", "am", "come"},
		},
		{
			Prompt:      "Thank you very much!",
			RespondWith: "Say you're welcome",
			Responses:   []string{"You're welcome!", "No problem!", "My pleasure!", "Don't mention it."},
			Grammar:     []string{"polite-expressions"},
			Keywords:    []string{"welcome", "problem", "pleasure", "mention"},
		},
		{
			Prompt:      "I'm sorry.",
			RespondWith: "Say it's okay / no problem",
			Responses:   []string{"It's okay.", "No problem.", "Don't worry about it.", "That's alright."},
			Grammar:     []string{"polite-expressions"},
			Keywords:    []string{"okay", "problem", "worry", "alright", "fine"},
		},
		{
			Prompt:      "Do you speak English?",
			RespondWith: "Say yes, a little",
			Responses:   []string{"Yes, a little.", "Yes, I do.", "A little bit.", "Yes, I speak some English."},
			Grammar:     []string{"basic-questions-responses", "present-simple"},
			Keywords:    []string{"yes", "little", "bit", "some"},
		},
	},

	entities.LevelA2: {
		{
			Prompt:      "Do you like coffee?",
			RespondWith: "Say yes and that you drink it every morning",
			Responses:   []string{"Yes, I love coffee. I drink it every morning.", "Yes, I like it a lot. I have it every morning.", "Yes! I drink coffee every morning."},
			Grammar:     []string{"yes-no-responses", "present-simple", "frequency-adverbs"},
			Keywords:    []string{"yes", "coffee", "morning", "drink", "every"},
		},
		{
			Prompt:      "Can you help me?",
			RespondWith: "Say yes, of course, and ask what they need",
			Responses:   []string{"Yes, of course! What do you need?", "Sure! How can I help?", "Of course! What can I do for you?"},
			Grammar:     []string{"yes-no-responses", "modals-basic"},
			Keywords:    []string{"yes", "course", "sure", "help", "need", "what"},
		},
		{
			Prompt:      "Would you like to go to the cinema tonight?",
			RespondWith: "Accept the invitation enthusiastically",
			Responses:   []string{"Yes, I'd love to!", "That sounds great!", "Sure, what time?", "Yes, that would be fun!"},
			Grammar:     []string{"invitation-responses", "future-going-to"},
			Keywords:    []string{"yes", "love", "great", "sure", "sounds", "fun"},
		},
		{
			Prompt:      "Would you like to go to the cinema tonight?",
			RespondWith: "Politely decline, saying you're busy",
			Responses:   []string{"I'm sorry, I can't. I'm busy tonight.", "Thanks, but I have plans tonight.", "I'd love to, but I can't tonight.", "Sorry, maybe another time?"},
			Grammar:     []string{"invitation-responses", "modals-basic"},
			Keywords:    []string{"sorry", "can't", "busy", "plans", "another"},
		},
		{
			Prompt:      "What do you do for work?",
			RespondWith: "Say your job (use any profession)",
			Responses:   []string{"I'm a teacher.", "I work as an engineer.", "I'm a doctor.", "I work in an office."},
			Grammar:     []string{"basic-questions-responses", "present-simple"},
			Keywords:    []string{"I'm", "work", "am"},
		},
		{
			Prompt:      "What are you doing this weekend?",
			RespondWith: "Say you're visiting family",
			Responses:   []string{"I'm visiting my family.", "I'm going to visit my parents.", "I'm spending time with my family.", "I have plans with my family."},
			Grammar:     []string{"present-continuous", "future-going-to"},
			Keywords:    []string{"visiting", "family", "going", "parents", "spending"},
		},
		{
			Prompt:      "How was your day?",
			RespondWith: "Say it was good but tiring",
			Responses:   []string{"It was good, but tiring.", "Pretty good, but I'm tired.", "Good, thanks! A bit exhausting though.", "It was nice but long."},
			Grammar:     []string{"past-simple", "connectors-basic"},
			Keywords:    []string{"good", "tiring", "tired", "exhausting", "but"},
		},
		{
			Prompt:      "What time is it?",
			RespondWith: "Say it's 3 o'clock",
			Responses:   []string{"It's 3 o'clock.", "It's three.", "Three o'clock.", "It's 3 PM."},
			Grammar:     []string{"basic-questions-responses", "numbers"},
			Keywords:    []string{"three", "3", "o'clock"},
		},
	},

	entities.LevelB1: {
		{
			Prompt:      "What do you think about social media?",
			RespondWith: "Give a balanced opinion - some good and bad points",
			Responses: []string{
				"I think it has both advantages and disadvantages. It's good for staying connected, but it can be addictive.",
				"In my opinion, it's useful for communication, but we shouldn't spend too much time on it.",
				"I believe it can be helpful, but it also has some negative effects on people.",
			},
			Grammar:  []string{"opinion-responses", "opinions", "connectors-basic"},
			Keywords: []string{"think", "opinion", "believe", "but", "good", "bad", "advantages", "disadvantages"},
		},
		{
			Prompt:      "I think we should take a taxi.",
			RespondWith: "Disagree politely and suggest walking instead",
			Responses: []string{
				"I'm not sure about that. The weather is nice, so why don't we walk?",
				"Actually, I think we should walk. It's not far and it's a beautiful day.",
				"I'd prefer to walk, if you don't mind. It's not that far.",
			},
			Grammar:  []string{"suggestion-responses", "opinions", "modals-basic"},
			Keywords: []string{"walk", "prefer", "think", "not sure", "actually"},
		},
		{
			Prompt:      "Sorry, I didn't understand. Could you repeat that?",
			RespondWith: "Say of course and offer to speak more slowly",
			Responses: []string{
				"Of course! I'll speak more slowly.",
				"Sure, no problem. Let me say it again more slowly.",
				"Yes, of course. I'll repeat it.",
			},
			Grammar:  []string{"clarification-responses", "modals-basic"},
			Keywords: []string{"course", "sure", "slowly", "repeat", "again"},
		},
		{
			Prompt:      "I just got a promotion at work!",
			RespondWith: "Congratulate them enthusiastically",
			Responses: []string{
				"Congratulations! That's wonderful news!",
				"That's amazing! Well done!",
				"How exciting! Congratulations!",
				"That's great news! You deserve it!",
			},
			Grammar:  []string{"emotion-responses"},
			Keywords: []string{"congratulations", "wonderful", "amazing", "great", "exciting", "deserve"},
		},
		{
			Prompt:      "My grandmother passed away last week.",
			RespondWith: "Express sympathy",
			Responses: []string{
				"I'm so sorry to hear that. My condolences.",
				"I'm very sorry for your loss.",
				"That's terrible. I'm here if you need anything.",
				"I'm so sorry. Please let me know if I can help.",
			},
			Grammar:  []string{"emotion-responses"},
			Keywords: []string{"sorry", "condolences", "loss", "here", "help"},
		},
		{
			Prompt:      "Have you ever been to Japan?",
			RespondWith: "Say no, but you'd love to go someday",
			Responses: []string{
				"No, I haven't, but I'd love to go someday.",
				"Not yet, but it's on my bucket list!",
				"No, but I've always wanted to visit Japan.",
				"I haven't, but I hope to go one day.",
			},
			Grammar:  []string{"present-perfect", "first-conditional"},
			Keywords: []string{"no", "haven't", "love", "want", "hope", "someday", "visit"},
		},
		{
			Prompt:      "Why don't we have lunch together?",
			RespondWith: "Accept and suggest a restaurant",
			Responses: []string{
				"That sounds great! How about that Italian place nearby?",
				"Good idea! There's a nice café around the corner.",
				"Sure! Do you know any good restaurants around here?",
			},
			Grammar:  []string{"suggestion-responses", "invitation-responses"},
			Keywords: []string{"sounds", "great", "good", "idea", "sure", "restaurant", "place", "café"},
		},
	},

	entities.LevelB2: {
		{
			Prompt:      "I think we should postpone the meeting until next week.",
			RespondWith: "Partially agree but suggest a compromise - maybe just delay by two days",
			Responses: []string{
				"I see your point, but what if we just pushed it back by two days instead?",
				"I understand, but perhaps we could delay it until Wednesday rather than next week?",
				"That might be too long. How about we reschedule for Thursday?",
			},
			Grammar:  []string{"negotiation-responses", "second-conditional"},
			Keywords: []string{"understand", "but", "what if", "perhaps", "instead", "rather", "how about"},
		},
		{
			Prompt:      "I don't think this project is worth pursuing.",
			RespondWith: "Respectfully disagree and give a reason to continue",
			Responses: []string{
				"I understand your concerns, but I think we should give it more time. The initial results look promising.",
				"I see where you're coming from, but the potential benefits outweigh the risks in my view.",
				"While I respect your opinion, I believe we shouldn't give up yet. We've made good progress.",
			},
			Grammar:  []string{"persuasion-responses", "opinions"},
			Keywords: []string{"understand", "but", "think", "believe", "potential", "progress", "promising"},
		},
		{
			Prompt:      "If you could live anywhere in the world, where would you choose?",
			RespondWith: "Name a place and explain why",
			Responses: []string{
				"I'd probably choose somewhere coastal, like Portugal. I love the sea and the weather there is perfect.",
				"I think I'd live in Japan. The culture fascinates me and I love Japanese food.",
				"I'd choose Canada. It has beautiful nature and people are very friendly there.",
			},
			Grammar:  []string{"second-conditional", "opinions"},
			Keywords: []string{"choose", "probably", "think", "love", "because", "would"},
		},
		{
			Prompt:      "What would you have done differently if you were me?",
			RespondWith: "Give thoughtful advice about what you would have done",
			Responses: []string{
				"If I had been in your situation, I might have waited a bit longer before making a decision.",
				"I think I would have asked for more opinions before deciding.",
				"Honestly, I probably would have done the same thing. It was a difficult situation.",
			},
			Grammar:  []string{"third-conditional", "modals-perfect"},
			Keywords: []string{"would have", "might have", "if", "situation", "probably"},
		},
		{
			Prompt:      "The service at this restaurant is terrible!",
			RespondWith: "Agree but suggest staying calm and speaking to the manager",
			Responses: []string{
				"You're right, it's not great. Maybe we should speak to the manager calmly.",
				"I agree, it's disappointing. Let's ask to speak with someone in charge.",
				"Yes, it could be better. Perhaps we should mention it politely before we leave.",
			},
			Grammar:  []string{"opinion-responses", "suggestion-responses"},
			Keywords: []string{"agree", "right", "maybe", "should", "speak", "manager", "politely"},
		},
	},

	entities.LevelC1: {
		{
			Prompt:      "Your presentation was interesting, but I'm not sure the data supports your conclusions.",
			RespondWith: "Acknowledge the criticism gracefully and offer to provide more evidence",
			Responses: []string{
				"That's a fair point. I'd be happy to share the additional research that led me to these conclusions.",
				"I appreciate the feedback. Perhaps I didn't make the connection clear enough - I can provide more supporting data.",
				"Thank you for raising that. You make a valid point, and I'll make sure to strengthen the evidence in my next draft.",
			},
			Grammar:  []string{"diplomatic-responses", "hedging-politeness"},
			Keywords: []string{"appreciate", "fair", "point", "happy", "provide", "evidence", "valid"},
		},
		{
			Prompt:      "I've heard that you're not happy with how the project is being managed.",
			RespondWith: "Diplomatically address the concern without being negative",
			Responses: []string{
				"I wouldn't say unhappy, but I do think there's room for improvement in our communication processes.",
				"I have some concerns, which I'd prefer to discuss directly with the team rather than through rumors.",
				"That's not quite accurate. I've raised some suggestions for improvement, but I support the project overall.",
			},
			Grammar:  []string{"diplomatic-responses", "nuanced-expressions"},
			Keywords: []string{"wouldn't", "concerns", "improvement", "prefer", "rather", "suggestions"},
		},
		{
			Prompt:      "Don't you think working from home is less productive than being in the office?",
			RespondWith: "Challenge the assumption diplomatically while acknowledging both sides",
			Responses: []string{
				"I think it really depends on the individual and the type of work. Some tasks benefit from collaboration, while others require deep focus.",
				"I'd hesitate to make such a blanket statement. The research actually shows mixed results depending on the context.",
				"That's an interesting assumption, but my experience has been quite different. Perhaps it varies by industry.",
			},
			Grammar:  []string{"diplomatic-responses", "complex-reasoning"},
			Keywords: []string{"depends", "think", "hesitate", "actually", "experience", "perhaps", "varies"},
		},
	},

	entities.LevelC2: {
		{
			Prompt:      "Some argue that artificial intelligence will eventually make human workers obsolete. What's your take on this?",
			RespondWith: "Give a sophisticated, nuanced response considering multiple perspectives",
			Responses: []string{
				"While I understand the concern, I'd argue that historical precedent suggests technology tends to transform rather than eliminate human labor. That said, the pace of change this time may indeed prove qualitatively different.",
				"It's a provocative thesis, but I think it oversimplifies the relationship between technological capability and economic reality. The question isn't whether AI can replace humans, but whether doing so would be desirable or even feasible.",
				"I find such deterministic predictions somewhat reductive. Human work encompasses far more than can be captured by efficiency metrics alone.",
			},
			Grammar:  []string{"philosophical", "argumentation"},
			Keywords: []string{"while", "argue", "indeed", "oversimplifies", "question", "whether", "encompasses"},
		},
	},
}
