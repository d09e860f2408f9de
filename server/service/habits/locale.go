package habits

import (
	"strings"
)

// texts is the wording for one language branch. Exactly two branches exist:
// "ru"-prefixed language tags and the default; this is not a general
// localization system.
type texts struct {
	dayNames [7]string

	tipStartSmall          string
	tipEarlierDeadlines    string
	tipRemindersRarelyHelp string
	tipMostNoDeadline      string
	tipBestTime            string // fmt: day, hour text
	tipKeepPace            string

	shortHeader     string // fmt: days
	shortDone       string // fmt: done, created
	shortOnTime     string // fmt: percent, on-time, due-done
	shortOnTimeNone string
	shortBestTime   string // fmt: day, hour text

	longCreated     string // fmt: created
	longDone        string // fmt: done
	longOnTime      string // fmt: on-time, due-done, percent
	longOnTimeNone  string
	longOverdue     string // fmt: overdue, due-done, percent
	longOverdueNone string
	longNoDue       string // fmt: count, rate
	longReminders   string // fmt: tasks, rate
	longPeak        string // fmt: day, hour text

	recommendations string
}

var textsRU = texts{
	dayNames: [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},

	tipStartSmall:          "Начни с 1–2 коротких задач в день, чтобы закрепить ритм.",
	tipEarlierDeadlines:    "Попробуй ставить дедлайны раньше и включать напоминания.",
	tipRemindersRarelyHelp: "Напоминания редко помогают — попробуй добавить напоминание за 2–4 часа.",
	tipMostNoDeadline:      "Большинство задач без дедлайна — дедлайн повышает шанс завершения.",
	tipBestTime:            "Лучшее время — %s %s. Планируй важное на этот слот.",
	tipKeepPace:            "Продолжай в том же темпе и закрепляй удачные временные окна.",

	shortHeader:     "🧠 Привычки за последние %d дн.",
	shortDone:       "✅ Выполнено: %d из %d",
	shortOnTime:     "⏱ В срок: %d%% (%d из %d)",
	shortOnTimeNone: "⏱ В срок: — (нет дедлайнов)",
	shortBestTime:   "🌟 Лучшее время: %s, %s",

	longCreated:     "Создано задач: %d",
	longDone:        "Завершено: %d",
	longOnTime:      "В срок: %d из %d (%d%%)",
	longOnTimeNone:  "В срок: — (нет задач с дедлайнами)",
	longOverdue:     "Просрочено: %d из %d (%d%%)",
	longOverdueNone: "Просрочено: —",
	longNoDue:       "Без дедлайна: %d (%d%%)",
	longReminders:   "Напоминания помогли: %d задач (%d%%)",
	longPeak:        "Пик завершения: %s, %s",

	recommendations: "Рекомендации:",
}

var textsEN = texts{
	dayNames: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},

	tipStartSmall:          "Start with 1–2 short tasks a day to build a rhythm.",
	tipEarlierDeadlines:    "Try setting earlier deadlines and enabling reminders.",
	tipRemindersRarelyHelp: "Reminders rarely help — try adding one 2–4 hours ahead.",
	tipMostNoDeadline:      "Most tasks have no deadline — a deadline raises completion odds.",
	tipBestTime:            "Your best time is %s %s. Schedule important work then.",
	tipKeepPace:            "Keep the pace and stick to the time slots that work for you.",

	shortHeader:     "🧠 Habits over the last %d days",
	shortDone:       "✅ Completed: %d of %d",
	shortOnTime:     "⏱ On time: %d%% (%d of %d)",
	shortOnTimeNone: "⏱ On time: — (no deadlines)",
	shortBestTime:   "🌟 Best time: %s, %s",

	longCreated:     "Tasks created: %d",
	longDone:        "Completed: %d",
	longOnTime:      "On time: %d of %d (%d%%)",
	longOnTimeNone:  "On time: — (no tasks with deadlines)",
	longOverdue:     "Overdue: %d of %d (%d%%)",
	longOverdueNone: "Overdue: —",
	longNoDue:       "No deadline: %d (%d%%)",
	longReminders:   "Reminders helped: %d tasks (%d%%)",
	longPeak:        "Completion peak: %s, %s",

	recommendations: "Recommendations:",
}

// textsFor selects the language branch for a BCP 47 tag.
func textsFor(language string) *texts {
	if strings.HasPrefix(strings.ToLower(language), "ru") {
		return &textsRU
	}
	return &textsEN
}
