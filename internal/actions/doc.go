// Package actions provides the named acceptance handlers that menu files
// attach to settings.
//
// A menu file cannot carry code, so each setting names a handler instead:
//
//   - accept: keep every value, nothing applied
//   - reject: refuse every value
//   - apply: push the value to the Applied store and keep it
//   - apply-reject: push the value to the Applied store but refuse it
//
// The apply handlers are the ones to combine with live settings; the
// Applied store then shows what the outside world currently sees,
// including the revert that follows a cancelled live edit.
package actions
