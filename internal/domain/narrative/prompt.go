package narrative

import "strings"

// Fallback phrases substituted for absent fields. The answer sections fall
// back to their sentinel phrases so the model sees the same marker the
// frontend stores.
const (
	fallbackName      = "This person"
	fallbackLocation  = "their community"
	fallbackInterests = "No specific interests provided"
)

// promptTemplate is the fixed narrative brief sent to the provider. The
// fidelity rules and style contract are instructions to the model; the
// composer only performs exact-match placeholder substitution and never
// alters the surrounding prose.
const promptTemplate = `Write a short biographical story about {{NAME}}, who lives in {{LOCATION}}, told in the first person as if they are speaking to a new friend.

Here is what they shared in their interview.

Their life story and background:
{{STORY_ANSWERS}}

What brings them joy and shows their humanity:
{{JOY_HUMANITY_ANSWERS}}

Their passions and dreams:
{{PASSION_DREAMS_ANSWERS}}

How they prefer to connect with others:
{{CONNECTION_PREFERENCES_ANSWERS}}

Anything else they wanted to add:
{{OPEN_ENDED_ANSWER}}

Their interests: {{INTEREST_TAGS}}

Rules for the story:
- Use only the material above. Do not invent people, relationships, events, or embellishments beyond what they shared.
- Open with a short quotation in their own voice.
- Write 2 to 4 paragraphs, fewer when little material was provided.
- Keep their natural phrasing and tone wherever you can.`

// BuildPrompt substitutes the request fields into the narrative template,
// applying the field-specific fallbacks for anything absent. Interest tags
// are joined with commas in their original order.
func BuildPrompt(req Request) string {
	replacer := strings.NewReplacer(
		"{{NAME}}", orFallback(req.Name, fallbackName),
		"{{LOCATION}}", orFallback(req.Location, fallbackLocation),
		"{{STORY_ANSWERS}}", sectionOrSentinel(req.StoryAnswers, SentinelNoAnswers),
		"{{JOY_HUMANITY_ANSWERS}}", sectionOrSentinel(req.JoyHumanityAnswers, SentinelNoAnswers),
		"{{PASSION_DREAMS_ANSWERS}}", sectionOrSentinel(req.PassionDreamsAnswers, SentinelNoAnswers),
		"{{CONNECTION_PREFERENCES_ANSWERS}}", sectionOrSentinel(req.ConnectionPreferencesAnswers, SentinelNoAnswers),
		"{{OPEN_ENDED_ANSWER}}", sectionOrSentinel(req.OpenEndedAnswer, SentinelNoThoughts),
		"{{INTEREST_TAGS}}", joinInterests(req.InterestTags),
	)
	return replacer.Replace(promptTemplate)
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func sectionOrSentinel(value, sentinel string) string {
	if !SectionPresent(value) {
		return sentinel
	}
	return value
}

func joinInterests(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		kept = append(kept, tag)
	}
	if len(kept) == 0 {
		return fallbackInterests
	}
	return strings.Join(kept, ", ")
}
