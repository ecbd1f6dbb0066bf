package telegram

const msgWelcome = `👋 <b>Welcome to Lingua Trainer!</b>

I generate practice sentences for your level and track every grammar topic with spaced repetition, so you review exactly what you are about to forget.

/practice — start practicing
/progress — grammar topics and review schedule
/stats — overall statistics
/settings — languages and level
/help — all commands`

const msgHelp = `<b>Commands</b>

/practice — get a sentence to translate or a prompt to answer
/hint — reveal part of the expected answer (costs score)
/skip — give up on the current sentence
/stop — end the practice session

/progress — per-topic review schedule
/stats — overall statistics
/word &lt;word&gt; — look up a word
/export — download your progress as JSON
/reset — wipe all progress
/settings — languages and level

During practice, just type your answer as a regular message.`

const msgUnknownCommand = "Unknown command. Try /help."

const msgInternalError = "⚠️ Something went wrong. Please try again."

const msgNoActiveRound = "No active sentence. Use /practice to get one."

const msgSessionEnded = "Session ended. Your progress is saved — see you next time! 👋"

const msgResetConfirm = `⚠️ This wipes <b>all</b> review progress and statistics. Settings are kept.

This cannot be undone.`

const msgResetDone = "All progress has been reset."

const msgResetCancelled = "Reset cancelled. Nothing was changed."

const msgImportHint = "Send your exported JSON file as a document to restore progress."

const msgImportDone = "✅ Progress imported."

const msgImportInvalid = "That file is not a valid progress export. Your current progress is untouched."

const msgWordUsage = "Usage: /word &lt;word&gt;"
