// Package sound inspects the configured alarm sound file without playing it:
// it decodes the header to report the audio format and duration.
package sound
