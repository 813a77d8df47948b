package config

// SystemPrompt defines the persona sent ahead of every user query
const SystemPrompt = `You are an AI chatbot for HalalFull.com, California's leading online meat shop platform.
Provide helpful, professional, and courteous support focusing on:
1. Product recommendations
2. Order tracking
3. Website assistance
4. Customer support`

// Sampling parameters for every completion request. Both are kept low for focused replies.
const (
	Temperature float32 = 0.1
	TopP        float32 = 0.1
)

// FallbackReply is returned when the completion API call fails
const FallbackReply = "Sorry, I'm unable to process your request at the moment."

// NoProductsMessage is returned when no product category matches a search
const NoProductsMessage = "No matching products found. Try a different search term."

// ContactFooter is shown at the bottom of every UI surface
const ContactFooter = "Need more help? Contact support@halalfull.com"

// AppTitle is the heading of the support widget
const AppTitle = "HalalFull Customer Support Chatbot 🥩"
