package config

// DefaultPrompt is the analysis template used when neither gemini.prompt nor
// gemini.prompt_file is set. The bracketed parts are meant to be edited.
const DefaultPrompt = "Analyze this audio for specific examples of [target topic] - these are instances where [explain what you're looking for]. " + `

Please start with a brief overview of what the audio is about.

For each relevant example found, include:
- When it was mentioned (timestamp)
- What specific aspect of [target topic] was discussed
- The context and details provided
- Direct quotes from the speaker if they described it specifically

Don't include:
- General discussion about [target topic] without specific examples
- Tangential mentions or references
- Theory or hypothetical scenarios

End with your assessment: How confident are you these were genuine examples of [target topic]? Were any examples unclear or ambiguous? How reliable were the speakers in their descriptions?

If no clear examples are found, simply state that.`
