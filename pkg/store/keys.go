package store

// Keys under which each view keeps its state. They match the keys the
// browser build of the tracker used, so exported data stays compatible.
const (
	KeyGoals            = "nafs-goals"
	KeyLessons          = "nafs-lessons"
	KeyWorkouts         = "nafs-workouts"
	KeyExercises        = "nafs-exercises"
	KeyPrayers          = "nafs-prayers"
	KeyPrayersLastReset = "nafs-prayers-last-reset"
	KeyEnglishGoals     = "nafs-english-goals"
	KeyEnglishPosition  = "nafs-english-position"
)

// AllKeys lists every key the tracker writes.
func AllKeys() []string {
	return []string{
		KeyGoals,
		KeyLessons,
		KeyWorkouts,
		KeyExercises,
		KeyPrayers,
		KeyEnglishGoals,
		KeyEnglishPosition,
		KeyPrayersLastReset,
	}
}

// ClearAll erases every tracker key.
func ClearAll(kv KV) error {
	for _, key := range AllKeys() {
		if err := kv.Erase(key); err != nil {
			return err
		}
	}
	return nil
}
