// Package sysprops is a process-wide system-property store and its logenv source.
//
// Properties are set programmatically or from "-D key=value" style definitions
// and are read by logenv on every build.
//
// Example:
//
//	sysprops.Set("app.logging.status", "DEBUG")
//	if err := sysprops.Define("app.logging.quick.net.example.Session=WARN"); err != nil {
//	    return err
//	}
//	builder := logenv.NewBuilder().WithSystemProperties(sysprops.New(sysprops.Options{}))
package sysprops
