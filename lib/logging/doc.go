// Package logging provides explicitly constructed, named loggers.
//
// Loggers implement the logger.ILogger interface of dragonboat
// (github.com/lni/dragonboat/v4/logger), so every package of this module logs
// through the familiar Debugf/Infof/Warningf/Errorf/Panicf methods and per logger
// levels. Entries are written by a zap core (go.uber.org/zap) either as console
// text or as JSON.
//
// There is no global logger and no initialization on first use. A Manager is
// created from a Config, started with Init and stopped with Shutdown:
//
//	mgr, err := logging.New(logging.Config{Level: "debug"})
//	if err != nil { ... }
//	mgr.Init()
//	defer mgr.Shutdown()
//
//	log := mgr.Logger("resiter")
//	log.Infof("loaded %d keys", n)
//
// Loggers handed out before Init or after Shutdown silently drop their entries.
// Library code that is not given a logger uses Nop().
package logging
