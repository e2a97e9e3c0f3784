// internal/agent/messages.go
package agent

// User-facing reply templates. Every terminal state of a query maps to
// one of these; providers' raw errors never reach the user.
const (
	msgNoPlace = "I couldn't identify which place you're asking about. " +
		"Please mention a specific location. For example: 'I'm going to Paris' " +
		"or 'What's the weather in Tokyo?'"

	msgPlaceNotFoundFmt = "I'm sorry, I don't know where '%s' is. It doesn't " +
		"seem to exist in my database. Could you please check the spelling or " +
		"try a different place?"

	msgWeatherFmt = "In %s, it's currently %.1f°C with %s and a %.0f%% chance of rain."

	msgWeatherUnavailableFmt = "I couldn't fetch weather information for %s at the moment."

	msgPlacesHeaderFmt = "Here are some great places you can visit in %s:"

	msgPlacesUnavailableFmt = "I couldn't find specific tourist attractions in %s, " +
		"but it's still worth exploring!"

	msgNoActionableIntentFmt = "I found %s, but I'm not sure what information " +
		"you need. You can ask about weather or places to visit!"

	msgCancelled = "Your request was cancelled before it completed."
)
