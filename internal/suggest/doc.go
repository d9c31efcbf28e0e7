// Package suggest fills in pinyin, English and Vietnamese for a hanzi
// entry by asking a language model. Two backends exist (OpenAI and Google
// Gemini); NewProvider wraps the chosen one in a circuit breaker and a
// per-session cache so a flaky API never blocks adding cards by hand.
package suggest
