package services

import "git.solsynth.dev/hypernet/circle/pkg/internal/util"

// Clock stamps every record the services create. Tests swap it for a util.StubClock.
var Clock util.Clock = util.NewRealClock()
