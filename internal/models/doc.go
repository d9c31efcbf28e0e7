// Package models lists the OpenAI chat models that can back the field
// suggestion feature, so users can pick a value for --openai-model.
package models
