package analyzer

import "fmt"

const sentimentPromptTemplate = `
Analyze the following text for emotional content and sentiment.
Text: "%s"

Respond with a JSON object that has the following structure:
{
  "score": number, // overall sentiment score between -1 (very negative) to 1 (very positive)
  "level": string, // "mild", "moderate", or "severe" based on the negativity
  "emotions": {
    "joy": number, // between 0 and 1
    "sadness": number, // between 0 and 1
    "anger": number, // between 0 and 1
    "fear": number, // between 0 and 1
    "love": number, // between 0 and 1
    "surprise": number // between 0 and 1
  }
}

The sum of all emotion values should be 1.0. Format the response as valid JSON only.`

const importantWordsPromptTemplate = `
Analyze the following journal entry and identify the 5 most emotionally significant words or short phrases.
Text: "%s"

Please respond with a JSON array of strings, each containing a significant word or short phrase.
Format the response as valid JSON only, like this: ["word1", "word2", ...]`

func sentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

func importantWordsPrompt(text string) string {
	return fmt.Sprintf(importantWordsPromptTemplate, text)
}
