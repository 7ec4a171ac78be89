package usecase

import "time"

// Log prefixes
const (
	logPrefixClassify = "internal.planner.usecase.classify"
	logPrefixDispatch = "internal.planner.usecase.dispatch"
)

// Classifier configuration
const (
	classifierTemperature = 0.1

	// DefaultEventDuration is applied when the LLM extracts no end time.
	DefaultEventDuration = time.Hour

	// eventSearchWindow bounds the undated delete search to near-term events.
	eventSearchWindow = 7 * 24 * time.Hour
)

// classifierSystem is the system message for the intent classification call.
const classifierSystem = "You are a helpful assistant that extracts information from user requests and outputs valid JSON."

// classifierPrompt is the classification rubric plus worked examples.
// The user's literal prompt fills the trailing %s slot.
const classifierPrompt = `You are an AI assistant that helps manage tasks by identifying user intent. Your output MUST be a valid JSON object.
If the user wants to 'send_email', extract 'to' (string, email address), 'subject' (string), and 'body' (string).
If the user wants to 'create_event', extract 'eventTitle' (string), 'eventDescription' (string, optional), 'startTime' (string, YYYY-MM-DDTHH:MM:SS), and 'endTime' (string, YYYY-MM-DDTHH:MM:SS, optional).
If the user wants to 'delete_event', extract 'eventTitleToDelete' (string) and 'eventDateToDelete' (string, YYYY-MM-DD, optional, for disambiguation).
If the user's request is a general conversational query and does not fit 'send_email', 'create_event', or 'delete_event', set the 'intent' to 'general_chat' and provide a 'response' field with your conversational reply to the user's prompt.
If a field is optional and not present, omit it from the JSON.
Here are some examples:

User: Schedule a team meeting for tomorrow at 10 AM for 1 hour. It's for the Q4 planning discussion.
Output: {"intent": "create_event", "eventTitle": "Team Meeting (Q4 Planning)", "startTime": "2025-07-22T10:00:00", "endTime": "2025-07-22T11:00:00", "eventDescription": "Q4 planning discussion"}

User: Add a reminder to call client XYZ on 2025-07-25 at 3:30 PM. It's about the new contract.
Output: {"intent": "create_event", "eventTitle": "Call Client XYZ", "startTime": "2025-07-25T15:30:00", "eventDescription": "Discuss new contract"}

User: Send an email to alice@example.com with the subject 'Project Update' and the body 'Hi Alice, the project is progressing well. Let's sync next week.'
Output: {"intent": "send_email", "to": "alice@example.com", "subject": "Project Update", "body": "Hi Alice, the project is progressing well. Let's sync next week."}

User: Just send a quick note to bob@example.com about the meeting reminder.
Output: {"intent": "send_email", "to": "bob@example.com", "subject": "Meeting Reminder", "body": "Just a quick note about the meeting reminder."}

User: Delete the 'Daily Standup' meeting.
Output: {"intent": "delete_event", "eventTitleToDelete": "Daily Standup"}

User: Cancel the 'Project Review' on 2025-07-25.
Output: {"intent": "delete_event", "eventTitleToDelete": "Project Review", "eventDateToDelete": "2025-07-25"}

User: Hi
Output: {"intent": "general_chat", "response": "Hello! How can I assist you today?"}

User: What is the capital of France?
Output: {"intent": "general_chat", "response": "The capital of France is Paris."}

User: %s
Output:`

// User-facing outcome messages
const (
	msgUnknownIntent = "Could not determine intent from your prompt. Please be more specific (e.g., 'send email to X', 'add event Y to calendar', 'delete event Z', or ask a general question)."

	msgEmailMissingFields = "Recipient email and subject are required to send an email, but the assistant could not extract them from the prompt."

	msgEventMissingFields = "Could not extract sufficient details to create a calendar event from your prompt. Missing title or start time."

	msgInvalidDateTime = "Invalid date/time format. Please use YYYY-MM-DDTHH:MM:SS (e.g., 2025-07-21T10:00:00)."

	msgDeleteMissingTitle = "Please provide the title of the event you wish to delete."

	msgChatNoReply = "The assistant responded, but no specific chat reply was found."
)
