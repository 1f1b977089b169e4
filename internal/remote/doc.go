// Package remote drives a settings menu over the network.
//
// A Controller serializes events from every source onto one menu. The
// Server exposes it on two routes:
//
//	GET /ws        websocket; each text frame is an event name
//	               ("up", "down", "ok", "cancel" or an alias) and is
//	               answered with a JSON Snapshot
//	GET /snapshot  the current Snapshot, without changing anything
//
// A Snapshot carries the grid lines together with the selection, the
// viewport top and the edit mode:
//
//	{"event":"up","changed":true,"editing":false,"selected":2,"top":0,
//	 "setting":"IF","value":"10000","lines":["  SAMPLERATE ...", ...]}
//
// Unknown events leave the menu untouched and come back with Error set.
//
// # Discovery
//
// With Config.Advertise the server announces itself as _settings-menu._tcp
// over mDNS; Scanner finds such servers and Client talks to them.
//
// # Usage Example
//
//	ctrl := remote.NewController(m, grid)
//	srv := remote.New(&remote.Config{Port: 8080, Advertise: true}, ctrl)
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
package remote
