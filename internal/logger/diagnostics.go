package logger

// Diagnostics adapts a *Logger to the Error/Warn channel used by the
// configuration resolver. Messages are logged as-is under the "cloudinary"
// component; a diagnostic never terminates the process.
type Diagnostics struct {
	log *Logger
}

// NewDiagnostics returns a Diagnostics writing through l. A nil l discards
// everything.
func NewDiagnostics(l *Logger) *Diagnostics {
	if l == nil {
		l = Nop()
	}
	return &Diagnostics{log: &Logger{l.With().Str("component", "cloudinary").Logger()}}
}

// Error logs a fatal configuration problem.
func (d *Diagnostics) Error(msg string) {
	d.log.Error().Msg(msg)
}

// Warn logs an advisory configuration problem.
func (d *Diagnostics) Warn(msg string) {
	d.log.Warn().Msg(msg)
}
