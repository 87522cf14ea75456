package reported

import (
	"shadow-sync/core/apperror"
	"shadow-sync/core/reconcile"
	"shadow-sync/core/schedule"
	"shadow-sync/core/shadow"
	"shadow-sync/core/utils"
)

// overlay replaces payload[field] with the stored reported array updated slot
// by slot from the incoming events. Absent or null arrays are left alone, and
// so is their count hint.
func (r *Reconciler) overlay(doc *shadow.Document, payload map[string]any, field, countField string, cmp func(a, b schedule.Event) int) error {
	raw, ok := payload[field]
	if !ok || raw == nil {
		return nil
	}
	incoming, err := schedule.AsEvents(field, raw)
	if err != nil {
		return err
	}

	working := storedArray(doc, field)
	if hint, present := payload[countField]; present {
		n, err := reconcile.IntField(countField, hint, r.cfg.MaxArraySlots)
		if err != nil {
			return err
		}
		if n != nil {
			working = resize(working, *n)
		}
	}

	for _, ev := range incoming {
		if ev == nil {
			continue
		}
		if field == FieldRecurring {
			if err := r.translateDayBitmask(ev); err != nil {
				return err
			}
		}
		if err := r.normalizer.TranslateForStore(ev); err != nil {
			return err
		}
	}
	// Null entries hold their slot. The remaining events are sorted into the
	// other indices in order.
	slots := make([]int, 0, len(incoming))
	events := make([]schedule.Event, 0, len(incoming))
	for i, ev := range incoming {
		if ev != nil {
			slots = append(slots, i)
			events = append(events, ev)
		}
	}
	schedule.SortFunc(events, cmp)

	for k, ev := range events {
		slot := slots[k]
		if p, has := ev[schedule.FieldPosition]; has {
			pos, err := reconcile.IntField(field+"."+schedule.FieldPosition, p, r.cfg.MaxArraySlots-1)
			if err != nil {
				return err
			}
			if pos != nil {
				slot = *pos
			}
			delete(ev, schedule.FieldPosition)
		}
		if slot >= r.cfg.MaxArraySlots {
			return apperror.Validation("%s has more than %d slots", field, r.cfg.MaxArraySlots)
		}
		if slot >= len(working) {
			working = resize(working, slot+1)
		}
		working[slot] = ev
	}

	payload[field] = schedule.ToJSON(working)
	return nil
}

// translateDayBitmask expands a legacy numeric day selector into a day list.
func (r *Reconciler) translateDayBitmask(ev schedule.Event) error {
	raw, ok := ev[schedule.FieldDays]
	if !ok || !utils.IsNumber(raw) {
		return nil
	}
	mask, ok := utils.ToInt(raw)
	if !ok || mask < 0 || mask >= 1<<schedule.DaysPerWeek {
		return apperror.Validation("invalid days of week bitmask %v", raw)
	}
	ev[schedule.FieldDays] = r.normalizer.DaysOfWeekBitmaskToArray(mask)
	return nil
}

// storedArray returns a copy of the reported array under field. Anything that
// is not an array of objects counts as empty.
func storedArray(doc *shadow.Document, field string) []schedule.Event {
	raw, ok := doc.ReportedValue(field)
	if !ok || raw == nil {
		return nil
	}
	events, err := schedule.AsEvents(field, utils.Clone(raw))
	if err != nil {
		return nil
	}
	return events
}

// resize truncates events or pads them with empty slots to length n.
func resize(events []schedule.Event, n int) []schedule.Event {
	if n <= len(events) {
		return events[:n]
	}
	return append(events, make([]schedule.Event, n-len(events))...)
}
