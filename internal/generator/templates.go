package generator

import "github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"

// Template is a sentence pattern with named slots. Each slot maps a
// placeholder name in the pattern to a vocabulary pool; a trailing digit
// on the slot name (city2) lets one pattern draw twice from the same pool.
type Template struct {
	Pattern string
	Slots   map[string]string
	Grammar []string
}

var sentenceTemplates = map[entities.Level][]Template{
	entities.LevelA1: {
		{Pattern: "I am {emotion}.", Slots: map[string]string{"emotion": "emotions"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "{name} is a {profession}.", Slots: map[string]string{"name": "names", "profession": "professions"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "The {object} is {color}.", Slots: map[string]string{"object": "objects", "color": "colors"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "We are in the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "It is {adjNeutral} today.", Slots: map[string]string{"adjNeutral": "adjNeutral"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "My {relation} is from {country}.", Slots: map[string]string{"relation": "relations", "country": "countries"}, Grammar: []string{"present-simple-be"}},
		{Pattern: "The {animal} is {adjNeutral}.", Slots: map[string]string{"animal": "animals", "adjNeutral": "adjNeutral"}, Grammar: []string{"present-simple-be"}},

		{Pattern: "I have a {color} {object}.", Slots: map[string]string{"color": "colors", "object": "objects"}, Grammar: []string{"present-simple-have"}},
		{Pattern: "{name} has a {animal}.", Slots: map[string]string{"name": "names", "animal": "animals"}, Grammar: []string{"present-simple-have"}},
		{Pattern: "We have {smallNumber} {object}s.", Slots: map[string]string{"smallNumber": "smallNumbers", "object": "objects"}, Grammar: []string{"present-simple-have", "numbers"}},
		{Pattern: "Do you have a {object}?", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-simple-have", "basic-questions"}},

		{Pattern: "I like {food}.", Slots: map[string]string{"food": "foods"}, Grammar: []string{"present-simple"}},
		{Pattern: "{name} speaks English.", Slots: map[string]string{"name": "names"}, Grammar: []string{"present-simple"}},
		{Pattern: "I want {food}.", Slots: map[string]string{"food": "foods"}, Grammar: []string{"present-simple"}},
		{Pattern: "She reads {object}s.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-simple"}},
		{Pattern: "We live in {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"present-simple"}},
		{Pattern: "They work in an {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"present-simple"}},
		{Pattern: "I need a {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-simple"}},
		{Pattern: "He plays with the {animal}.", Slots: map[string]string{"animal": "animals"}, Grammar: []string{"present-simple"}},

		{Pattern: "Where is the {place}?", Slots: map[string]string{"place": "places"}, Grammar: []string{"basic-questions", "present-simple-be"}},
		{Pattern: "What is your {object}?", Slots: map[string]string{"object": "objects"}, Grammar: []string{"basic-questions", "present-simple-be"}},
		{Pattern: "Do you like {food}?", Slots: map[string]string{"food": "foods"}, Grammar: []string{"basic-questions", "present-simple"}},
		{Pattern: "Is this your {object}?", Slots: map[string]string{"object": "objects"}, Grammar: []string{"basic-questions", "present-simple-be"}},
		{Pattern: "Where do you live?", Slots: map[string]string{}, Grammar: []string{"basic-questions", "present-simple"}},
		{Pattern: "What time is it?", Slots: map[string]string{}, Grammar: []string{"basic-questions"}},
		{Pattern: "How are you?", Slots: map[string]string{}, Grammar: []string{"basic-questions", "greetings"}},

		{Pattern: "Hello, my name is {name}.", Slots: map[string]string{"name": "names"}, Grammar: []string{"greetings", "present-simple-be"}},
		{Pattern: "Nice to meet you.", Slots: map[string]string{}, Grammar: []string{"greetings"}},
		{Pattern: "Good morning.", Slots: map[string]string{}, Grammar: []string{"greetings"}},
		{Pattern: "Thank you very much.", Slots: map[string]string{}, Grammar: []string{"greetings"}},
		{Pattern: "Please help me.", Slots: map[string]string{}, Grammar: []string{"greetings"}},
		{Pattern: "I don't understand.", Slots: map[string]string{}, Grammar: []string{"greetings", "present-simple"}},
		{Pattern: "Excuse me, where is the {place}?", Slots: map[string]string{"place": "places"}, Grammar: []string{"greetings", "basic-questions"}},

		{Pattern: "I am {smallNumber} years old.", Slots: map[string]string{"smallNumber": "smallNumbers"}, Grammar: []string{"numbers", "present-simple-be"}},
		{Pattern: "There are {smallNumber} {animal}s.", Slots: map[string]string{"smallNumber": "smallNumbers", "animal": "animals"}, Grammar: []string{"numbers", "present-simple-be"}},
		{Pattern: "I have {smallNumber} {object}s.", Slots: map[string]string{"smallNumber": "smallNumbers", "object": "objects"}, Grammar: []string{"numbers", "present-simple-have"}},
	},

	entities.LevelA2: {
		{Pattern: "I went to the {place} {timePast}.", Slots: map[string]string{"place": "places", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "{name} visited {city} {timePast}.", Slots: map[string]string{"name": "names", "city": "cities", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "We watched a movie {timePast}.", Slots: map[string]string{"timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "I ate {food} for dinner {timePast}.", Slots: map[string]string{"food": "foods", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "She bought a {color} {clothing} {timePast}.", Slots: map[string]string{"color": "colors", "clothing": "clothing", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "They arrived at the {place} {timePast}.", Slots: map[string]string{"place": "places", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "I didn't see {name} {timePast}.", Slots: map[string]string{"name": "names", "timePast": "timePast"}, Grammar: []string{"past-simple"}},
		{Pattern: "Did you eat {food}?", Slots: map[string]string{"food": "foods"}, Grammar: []string{"past-simple", "basic-questions"}},
		{Pattern: "The {animal} ran away {timePast}.", Slots: map[string]string{"animal": "animals", "timePast": "timePast"}, Grammar: []string{"past-simple"}},

		{Pattern: "I am going to visit {city} {timeFuture}.", Slots: map[string]string{"city": "cities", "timeFuture": "timeFuture"}, Grammar: []string{"future-going-to"}},
		{Pattern: "{name} is going to become a {profession}.", Slots: map[string]string{"name": "names", "profession": "professions"}, Grammar: []string{"future-going-to"}},
		{Pattern: "We are going to buy a {object} {timeFuture}.", Slots: map[string]string{"object": "objects", "timeFuture": "timeFuture"}, Grammar: []string{"future-going-to"}},
		{Pattern: "Are you going to travel to {country} {timeFuture}?", Slots: map[string]string{"country": "countries", "timeFuture": "timeFuture"}, Grammar: []string{"future-going-to", "basic-questions"}},
		{Pattern: "They are going to move to {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"future-going-to"}},

		{Pattern: "I am reading a {object} right now.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-continuous"}},
		{Pattern: "{name} is cooking {food}.", Slots: map[string]string{"name": "names", "food": "foods"}, Grammar: []string{"present-continuous"}},
		{Pattern: "They are playing in the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"present-continuous"}},
		{Pattern: "What are you doing?", Slots: map[string]string{}, Grammar: []string{"present-continuous", "basic-questions"}},
		{Pattern: "She is wearing a {color} {clothing}.", Slots: map[string]string{"color": "colors", "clothing": "clothing"}, Grammar: []string{"present-continuous"}},
		{Pattern: "It is raining outside.", Slots: map[string]string{}, Grammar: []string{"present-continuous"}},
		{Pattern: "The {animal} is sleeping.", Slots: map[string]string{"animal": "animals"}, Grammar: []string{"present-continuous"}},

		{Pattern: "This {object} is more {adjPositive} than that one.", Slots: map[string]string{"object": "objects", "adjPositive": "adjPositive"}, Grammar: []string{"comparatives"}},
		{Pattern: "{city} is bigger than {city2}.", Slots: map[string]string{"city": "cities", "city2": "cities"}, Grammar: []string{"comparatives"}},
		{Pattern: "The {food} is more {adjPositive} than the {food2}.", Slots: map[string]string{"food": "foods", "adjPositive": "adjPositive", "food2": "foods"}, Grammar: []string{"comparatives"}},
		{Pattern: "Today is {adjNeutral}er than yesterday.", Slots: map[string]string{"adjNeutral": "adjNeutral"}, Grammar: []string{"comparatives"}},

		{Pattern: "I can speak {smallNumber} languages.", Slots: map[string]string{"smallNumber": "smallNumbers"}, Grammar: []string{"modals-basic", "numbers"}},
		{Pattern: "{name} can't come to the {place}.", Slots: map[string]string{"name": "names", "place": "places"}, Grammar: []string{"modals-basic"}},
		{Pattern: "You must finish your {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"modals-basic"}},
		{Pattern: "We should visit the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"modals-basic"}},
		{Pattern: "Can you help me with the {object}?", Slots: map[string]string{"object": "objects"}, Grammar: []string{"modals-basic", "basic-questions"}},
		{Pattern: "I have to work {timeFuture}.", Slots: map[string]string{"timeFuture": "timeFuture"}, Grammar: []string{"modals-basic"}},

		{Pattern: "I {frequency} eat {food} for breakfast.", Slots: map[string]string{"frequency": "frequency", "food": "foods"}, Grammar: []string{"frequency-adverbs", "present-simple"}},
		{Pattern: "{name} {frequency} goes to the {place}.", Slots: map[string]string{"name": "names", "frequency": "frequency", "place": "places"}, Grammar: []string{"frequency-adverbs", "present-simple"}},
		{Pattern: "We {frequency} watch movies on weekends.", Slots: map[string]string{"frequency": "frequency"}, Grammar: []string{"frequency-adverbs", "present-simple"}},
		{Pattern: "They {frequency} travel to {country}.", Slots: map[string]string{"frequency": "frequency", "country": "countries"}, Grammar: []string{"frequency-adverbs", "present-simple"}},

		{Pattern: "I like {food} but I prefer {food2}.", Slots: map[string]string{"food": "foods", "food2": "foods"}, Grammar: []string{"connectors-basic", "present-simple"}},
		{Pattern: "{name} is {adjPositive} and {adjPositive2}.", Slots: map[string]string{"name": "names", "adjPositive": "adjPositive", "adjPositive2": "adjPositive"}, Grammar: []string{"connectors-basic", "present-simple-be"}},
		{Pattern: "I stayed home because it was {adjNegative}.", Slots: map[string]string{"adjNegative": "adjNegative"}, Grammar: []string{"connectors-basic", "past-simple"}},
		{Pattern: "I want to go to the {place}, but I can't.", Slots: map[string]string{"place": "places"}, Grammar: []string{"connectors-basic", "modals-basic"}},
	},

	entities.LevelB1: {
		{Pattern: "I have lived in {city} {duration}.", Slots: map[string]string{"city": "cities", "duration": "duration"}, Grammar: []string{"present-perfect"}},
		{Pattern: "{name} has never been to {country}.", Slots: map[string]string{"name": "names", "country": "countries"}, Grammar: []string{"present-perfect"}},
		{Pattern: "We have already finished the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-perfect"}},
		{Pattern: "Have you ever tried {food}?", Slots: map[string]string{"food": "foods"}, Grammar: []string{"present-perfect", "basic-questions"}},
		{Pattern: "They have just arrived from {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"present-perfect"}},
		{Pattern: "I have worked as a {profession} {duration}.", Slots: map[string]string{"profession": "professions", "duration": "duration"}, Grammar: []string{"present-perfect"}},
		{Pattern: "{name} has visited many {place}s.", Slots: map[string]string{"name": "names", "place": "places"}, Grammar: []string{"present-perfect"}},
		{Pattern: "I haven't seen that {object} yet.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"present-perfect"}},

		{Pattern: "I was reading when {name} called.", Slots: map[string]string{"name": "names"}, Grammar: []string{"past-continuous"}},
		{Pattern: "They were sleeping when the {animal} started barking.", Slots: map[string]string{"animal": "animals"}, Grammar: []string{"past-continuous"}},
		{Pattern: "What were you doing at the {place}?", Slots: map[string]string{"place": "places"}, Grammar: []string{"past-continuous", "basic-questions"}},
		{Pattern: "{name} was cooking while the children were playing.", Slots: map[string]string{"name": "names"}, Grammar: []string{"past-continuous"}},

		{Pattern: "If it rains, I will stay at the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"first-conditional"}},
		{Pattern: "If you study {abstractTopic}, you will find a good job.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"first-conditional"}},
		{Pattern: "I will call {name} if I have time.", Slots: map[string]string{"name": "names"}, Grammar: []string{"first-conditional"}},
		{Pattern: "If she doesn't hurry, she will miss the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"first-conditional"}},
		{Pattern: "What will you do if you visit {city}?", Slots: map[string]string{"city": "cities"}, Grammar: []string{"first-conditional", "basic-questions"}},

		{Pattern: "{opinionIntro} this {object} is {adjPositive}.", Slots: map[string]string{"opinionIntro": "opinionIntro", "object": "objects", "adjPositive": "adjPositive"}, Grammar: []string{"opinions"}},
		{Pattern: "{opinionIntro} we should visit {city}.", Slots: map[string]string{"opinionIntro": "opinionIntro", "city": "cities"}, Grammar: []string{"opinions", "modals-basic"}},
		{Pattern: "I feel like eating {food}.", Slots: map[string]string{"food": "foods"}, Grammar: []string{"opinions"}},
		{Pattern: "It seems that {name} has left the {place}.", Slots: map[string]string{"name": "names", "place": "places"}, Grammar: []string{"opinions", "present-perfect"}},
		{Pattern: "I'm afraid I can't help you with the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"opinions", "modals-basic"}},

		{Pattern: "{name} said that the {place} was {adjNeutral}.", Slots: map[string]string{"name": "names", "place": "places", "adjNeutral": "adjNeutral"}, Grammar: []string{"reported-speech-basic"}},
		{Pattern: "She told me that she would visit {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"reported-speech-basic"}},
		{Pattern: "They asked if we wanted to go to the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"reported-speech-basic"}},
		{Pattern: "{name} mentioned that the {food} was {adjPositive}.", Slots: map[string]string{"name": "names", "food": "foods", "adjPositive": "adjPositive"}, Grammar: []string{"reported-speech-basic"}},

		{Pattern: "I'm learning languages to travel to {country}.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"purpose-reason"}},
		{Pattern: "{name} went to the {place} to buy a {object}.", Slots: map[string]string{"name": "names", "place": "places", "object": "objects"}, Grammar: []string{"purpose-reason", "past-simple"}},
		{Pattern: "I bought a {object} for my {relation}.", Slots: map[string]string{"object": "objects", "relation": "relations"}, Grammar: []string{"purpose-reason", "past-simple"}},
		{Pattern: "She exercises every day to stay {emotion}.", Slots: map[string]string{"emotion": "emotions"}, Grammar: []string{"purpose-reason", "present-simple"}},

		{Pattern: "The {object} was made in {country}.", Slots: map[string]string{"object": "objects", "country": "countries"}, Grammar: []string{"passive-basic"}},
		{Pattern: "This {place} was built by my {relation}.", Slots: map[string]string{"place": "places", "relation": "relations"}, Grammar: []string{"passive-basic"}},
		{Pattern: "The {object} will be delivered {timeFuture}.", Slots: map[string]string{"object": "objects", "timeFuture": "timeFuture"}, Grammar: []string{"passive-basic"}},
		{Pattern: "{food} is eaten in many countries.", Slots: map[string]string{"food": "foods"}, Grammar: []string{"passive-basic"}},

		{Pattern: "Although the {food} was {adjNegative}, we ate it.", Slots: map[string]string{"food": "foods", "adjNegative": "adjNegative"}, Grammar: []string{"relative-clauses-basic", "connectors-basic"}},
		{Pattern: "I enjoy reading, especially about {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"present-simple"}},
		{Pattern: "The {place} where we met is {adjNeutral}.", Slots: map[string]string{"place": "places", "adjNeutral": "adjNeutral"}, Grammar: []string{"relative-clauses-basic"}},
		{Pattern: "I remember the day when I visited {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"relative-clauses-basic"}},
		{Pattern: "The {profession} who helped me was {adjPositive}.", Slots: map[string]string{"profession": "professions", "adjPositive": "adjPositive"}, Grammar: []string{"relative-clauses-basic"}},
	},

	entities.LevelB2: {
		{Pattern: "If I had more time, I would learn about {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"second-conditional"}},
		{Pattern: "If {name} were here, she would know what to do.", Slots: map[string]string{"name": "names"}, Grammar: []string{"second-conditional"}},
		{Pattern: "What would you do if you lived in {city}?", Slots: map[string]string{"city": "cities"}, Grammar: []string{"second-conditional", "basic-questions"}},
		{Pattern: "I would travel to {country} if I didn't have to work.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"second-conditional"}},
		{Pattern: "If I were you, I wouldn't buy that {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"second-conditional"}},

		{Pattern: "If I had known about the {place}, I would have visited it.", Slots: map[string]string{"place": "places"}, Grammar: []string{"third-conditional"}},
		{Pattern: "{name} would have succeeded if she had studied {abstractTopic}.", Slots: map[string]string{"name": "names", "abstractTopic": "abstractTopics"}, Grammar: []string{"third-conditional"}},
		{Pattern: "If they had left earlier, they wouldn't have missed the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"third-conditional"}},
		{Pattern: "I would have called {name} if I had had the {object}.", Slots: map[string]string{"name": "names", "object": "objects"}, Grammar: []string{"third-conditional"}},

		{Pattern: "I had never seen such a {adjPositive} {place} before.", Slots: map[string]string{"adjPositive": "adjPositive", "place": "places"}, Grammar: []string{"past-perfect"}},
		{Pattern: "By the time we arrived, {name} had already left.", Slots: map[string]string{"name": "names"}, Grammar: []string{"past-perfect"}},
		{Pattern: "She realized she had forgotten her {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"past-perfect"}},
		{Pattern: "He had been working as a {profession} for years before he quit.", Slots: map[string]string{"profession": "professions"}, Grammar: []string{"past-perfect"}},

		{Pattern: "I wish I could visit {city} more often.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"wishes"}},
		{Pattern: "If only I had learned about {abstractTopic} earlier.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"wishes"}},
		{Pattern: "I wish {name} were here with me.", Slots: map[string]string{"name": "names"}, Grammar: []string{"wishes"}},
		{Pattern: "She wishes she had more {abstractConcept}.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"wishes"}},
		{Pattern: "I'd rather you didn't bring your {animal} to the {place}.", Slots: map[string]string{"animal": "animals", "place": "places"}, Grammar: []string{"wishes"}},

		{Pattern: "You should have told {name} about the {object}.", Slots: map[string]string{"name": "names", "object": "objects"}, Grammar: []string{"modals-perfect"}},
		{Pattern: "{name} must have forgotten about the {place}.", Slots: map[string]string{"name": "names", "place": "places"}, Grammar: []string{"modals-perfect"}},
		{Pattern: "They might have already left {city}.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"modals-perfect"}},
		{Pattern: "He could have been more {adjPositive}.", Slots: map[string]string{"adjPositive": "adjPositive"}, Grammar: []string{"modals-perfect"}},
		{Pattern: "You needn't have worried about the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"modals-perfect"}},

		{Pattern: "The {object} that I told you about is from {country}.", Slots: map[string]string{"object": "objects", "country": "countries"}, Grammar: []string{"relative-clauses-advanced"}},
		{Pattern: "The {place} in which {name} works is {adjPositive}.", Slots: map[string]string{"place": "places", "name": "names", "adjPositive": "adjPositive"}, Grammar: []string{"relative-clauses-advanced"}},
		{Pattern: "That's the reason why I didn't go to the {place}.", Slots: map[string]string{"place": "places"}, Grammar: []string{"relative-clauses-advanced"}},
		{Pattern: "My {relation}, whose {animal} always barks, moved to {city}.", Slots: map[string]string{"relation": "relations", "animal": "animals", "city": "cities"}, Grammar: []string{"relative-clauses-advanced"}},

		{Pattern: "The {object} is expected to be delivered {timeFuture}.", Slots: map[string]string{"object": "objects", "timeFuture": "timeFuture"}, Grammar: []string{"passive-advanced"}},
		{Pattern: "The {profession} is believed to have left the {place}.", Slots: map[string]string{"profession": "professions", "place": "places"}, Grammar: []string{"passive-advanced"}},
		{Pattern: "It is said that this {place} has the best {food}.", Slots: map[string]string{"place": "places", "food": "foods"}, Grammar: []string{"passive-advanced"}},
		{Pattern: "The {place} is being renovated at the moment.", Slots: map[string]string{"place": "places"}, Grammar: []string{"passive-advanced"}},

		{Pattern: "The importance of {abstractTopic} cannot be overstated.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"abstract-concepts"}},
		{Pattern: "{abstractConcept} often depends on {abstractConcept2}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractConcept2": "abstractConcepts"}, Grammar: []string{"abstract-concepts"}},
		{Pattern: "The impact of {abstractTopic} on {abstractTopic2} has been profound.", Slots: map[string]string{"abstractTopic": "abstractTopics", "abstractTopic2": "abstractTopics"}, Grammar: []string{"abstract-concepts"}},
		{Pattern: "Cultural differences in {country} can be {adjPositive}.", Slots: map[string]string{"country": "countries", "adjPositive": "adjPositive"}, Grammar: []string{"abstract-concepts"}},
	},

	entities.LevelC1: {
		{Pattern: "If I had studied {abstractTopic} in school, I would have better {abstractConcept} now.", Slots: map[string]string{"abstractTopic": "abstractTopics", "abstractConcept": "abstractConcepts"}, Grammar: []string{"mixed-conditionals"}},
		{Pattern: "If {name} weren't so focused on {abstractConcept}, she would have accepted help.", Slots: map[string]string{"name": "names", "abstractConcept": "abstractConcepts"}, Grammar: []string{"mixed-conditionals"}},
		{Pattern: "If we had invested in {abstractTopic}, we would be more {adjPositive} now.", Slots: map[string]string{"abstractTopic": "abstractTopics", "adjPositive": "adjPositive"}, Grammar: []string{"mixed-conditionals"}},

		{Pattern: "Never have I seen such {adjNegative} {abstractTopic}.", Slots: map[string]string{"adjNegative": "adjNegative", "abstractTopic": "abstractTopics"}, Grammar: []string{"inversion"}},
		{Pattern: "Not only did {name} arrive late, but she also forgot the {object}.", Slots: map[string]string{"name": "names", "object": "objects"}, Grammar: []string{"inversion"}},
		{Pattern: "Had I known about the {abstractTopic}, I would have acted sooner.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"inversion"}},
		{Pattern: "Rarely do we get such an {abstractConcept} for {abstractTopic}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractTopic": "abstractTopics"}, Grammar: []string{"inversion"}},
		{Pattern: "Under no circumstances should you ignore {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"inversion"}},

		{Pattern: "What I need is some {abstractConcept} in my {place}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "place": "rooms"}, Grammar: []string{"cleft-sentences"}},
		{Pattern: "It was {name}'s approach to {abstractTopic} that bothered me.", Slots: map[string]string{"name": "names", "abstractTopic": "abstractTopics"}, Grammar: []string{"cleft-sentences"}},
		{Pattern: "What we should focus on is improving {abstractConcept}.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"cleft-sentences"}},
		{Pattern: "It's not the {object} that concerns me, it's the {abstractConcept}.", Slots: map[string]string{"object": "objects", "abstractConcept": "abstractConcepts"}, Grammar: []string{"cleft-sentences"}},

		{Pattern: "The proposal, while {adjPositive}, raises several concerns about {abstractTopic}.", Slots: map[string]string{"adjPositive": "adjPositive", "abstractTopic": "abstractTopics"}, Grammar: []string{"nuanced-expressions"}},
		{Pattern: "I couldn't help but notice the lack of {abstractConcept} in the {place}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "place": "places"}, Grammar: []string{"nuanced-expressions"}},
		{Pattern: "It goes without saying that {abstractConcept} is paramount in {abstractTopic}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractTopic": "abstractTopics"}, Grammar: []string{"nuanced-expressions"}},
		{Pattern: "{name} came across as somewhat dismissive of our {abstractConcept}.", Slots: map[string]string{"name": "names", "abstractConcept": "abstractConcepts"}, Grammar: []string{"nuanced-expressions"}},
		{Pattern: "The situation calls for a more {adjPositive} approach to {abstractTopic}.", Slots: map[string]string{"adjPositive": "adjPositive", "abstractTopic": "abstractTopics"}, Grammar: []string{"nuanced-expressions"}},

		{Pattern: "I was wondering if you might be able to help me with {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"hedging-politeness"}},
		{Pattern: "It would appear that there has been some misunderstanding about the {object}.", Slots: map[string]string{"object": "objects"}, Grammar: []string{"hedging-politeness"}},
		{Pattern: "I don't suppose you could share your {object} with {name}?", Slots: map[string]string{"object": "objects", "name": "names"}, Grammar: []string{"hedging-politeness"}},
		{Pattern: "Would you mind if I made a suggestion about {abstractTopic}?", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"hedging-politeness"}},
		{Pattern: "I'm inclined to think that we should reconsider our approach to {abstractConcept}.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"hedging-politeness"}},

		{Pattern: "Let's not beat around the bush and discuss {abstractTopic} directly.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"idioms"}},
		{Pattern: "The project about {abstractTopic} has been put on the back burner.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"idioms"}},
		{Pattern: "{name} tends to sit on the fence when it comes to {abstractTopic}.", Slots: map[string]string{"name": "names", "abstractTopic": "abstractTopics"}, Grammar: []string{"idioms"}},
		{Pattern: "We need to think outside the box to improve {abstractConcept}.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"idioms"}},
		{Pattern: "The news about {city} took everyone by surprise.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"idioms"}},

		{Pattern: "Given the circumstances in {country}, I believe we made the right decision.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"complex-reasoning"}},
		{Pattern: "In light of recent events in {abstractTopic}, we should reconsider our strategy.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"complex-reasoning"}},
		{Pattern: "The evidence suggests that our assumptions about {abstractTopic} were incorrect.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"complex-reasoning"}},
		{Pattern: "Despite the setbacks in {city}, the team remained committed to {abstractConcept}.", Slots: map[string]string{"city": "cities", "abstractConcept": "abstractConcepts"}, Grammar: []string{"complex-reasoning"}},
		{Pattern: "The findings have far-reaching implications for {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"complex-reasoning"}},
	},

	entities.LevelC2: {
		{Pattern: "The sheer audacity of the proposal regarding {abstractTopic} left the committee speechless.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"literary-formal"}},
		{Pattern: "{name}'s reluctance to engage with {abstractTopic} proved costly.", Slots: map[string]string{"name": "names", "abstractTopic": "abstractTopics"}, Grammar: []string{"literary-formal"}},
		{Pattern: "The ramifications of such a decision on {abstractConcept} would be felt for generations.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"literary-formal"}},
		{Pattern: "Her mastery of {abstractTopic} was evident in every response.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"literary-formal"}},
		{Pattern: "The notion that {abstractConcept} is inevitable is increasingly being questioned.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"literary-formal"}},

		{Pattern: "The organization's erstwhile allies in {country} have now become its fiercest critics.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"rare-structures"}},
		{Pattern: "Such hubris regarding {abstractTopic} invariably precedes a fall.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"rare-structures"}},
		{Pattern: "The ostensible purpose of the meeting was to discuss {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"rare-structures"}},
		{Pattern: "{name}'s equivocal response about {abstractConcept} did little to reassure anyone.", Slots: map[string]string{"name": "names", "abstractConcept": "abstractConcepts"}, Grammar: []string{"rare-structures"}},
		{Pattern: "The paucity of evidence regarding {abstractTopic} made it difficult to draw conclusions.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"rare-structures"}},

		{Pattern: "The pursuit of {abstractConcept}, paradoxically, often impedes {abstractConcept2}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractConcept2": "abstractConcepts"}, Grammar: []string{"philosophical"}},
		{Pattern: "Whether {abstractConcept} can be reduced to mere {abstractTopic} remains contentious.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractTopic": "abstractTopics"}, Grammar: []string{"philosophical"}},
		{Pattern: "The dichotomy between {abstractConcept} and {abstractConcept2} is a perennial tension.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractConcept2": "abstractConcepts"}, Grammar: []string{"philosophical"}},
		{Pattern: "Our perception of {abstractTopic} is necessarily mediated by our cognitive limitations.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"philosophical"}},
		{Pattern: "The ephemeral nature of {abstractConcept} stands in stark contrast to lasting {abstractConcept2}.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractConcept2": "abstractConcepts"}, Grammar: []string{"philosophical"}},

		{Pattern: "That the committee chose to disregard such compelling evidence about {abstractTopic} speaks volumes.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"complex-syntax"}},
		{Pattern: "Were the circumstances in {country} any different, I might have been inclined to agree.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"complex-syntax"}},
		{Pattern: "Suffice it to say that the situation regarding {abstractTopic} is considerably more nuanced.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"complex-syntax"}},
		{Pattern: "The degree to which {abstractConcept} and {abstractTopic} interact remains poorly understood.", Slots: map[string]string{"abstractConcept": "abstractConcepts", "abstractTopic": "abstractTopics"}, Grammar: []string{"complex-syntax"}},
		{Pattern: "Not until the full extent of the impact on {abstractConcept} became apparent did authorities act.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"complex-syntax"}},

		{Pattern: "While conceding the validity of certain objections, one must acknowledge the merits of {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"argumentation"}},
		{Pattern: "The argument about {abstractConcept}, however ingenious, rests on a questionable premise.", Slots: map[string]string{"abstractConcept": "abstractConcepts"}, Grammar: []string{"argumentation"}},
		{Pattern: "It would be remiss not to point out the inherent contradictions in this approach to {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"argumentation"}},
		{Pattern: "The proposal regarding {country}, notwithstanding its simplicity, raises profound questions.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"argumentation"}},
		{Pattern: "Any assessment of {abstractTopic} must take into account its unintended consequences.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"argumentation"}},

		{Pattern: "Like a phoenix rising from the ashes, {city} reinvented itself.", Slots: map[string]string{"city": "cities"}, Grammar: []string{"literary-references"}},
		{Pattern: "The irony of the situation regarding {abstractTopic} was not lost on those present.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"literary-references"}},
		{Pattern: "{name}'s Sisyphean efforts to reform {abstractTopic} ultimately proved futile.", Slots: map[string]string{"name": "names", "abstractTopic": "abstractTopics"}, Grammar: []string{"literary-references"}},
		{Pattern: "The Kafkaesque bureaucracy in {country} left citizens feeling powerless.", Slots: map[string]string{"country": "countries"}, Grammar: []string{"literary-references"}},
		{Pattern: "There is a certain quixotic charm to such idealistic endeavors in {abstractTopic}.", Slots: map[string]string{"abstractTopic": "abstractTopics"}, Grammar: []string{"literary-references"}},
	},
}
