// Package alarm contains the alarm schedule domain types.
//
// It defines Alarm (an immutable firing time plus weekday set), Builder (the
// alarm being assembled while a document is parsed) and Registry (the ordered,
// append-only collection of finished alarms), together with the helpers that
// interpret clock times and weekday names.
package alarm
