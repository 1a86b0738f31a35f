// Package rubikscube models a 3x3x3 twisty puzzle: six 3x3 faces of colored
// tiles and the ten quarter turns that permute them.
//
// # Quick Start
//
//	engine := rubikscube.NewEngine()
//
//	outcome, err := engine.ApplyToken("F+")
//	if err != nil {
//	    log.Println(err) // unrecognized token; cube unchanged
//	}
//	if outcome == rubikscube.TerminateRequested {
//	    return // "EX" was sent
//	}
//
//	front := engine.Face(rubikscube.Front)
//	fmt.Println(front.Row(0))
//
// # Moves
//
// The vocabulary is case-sensitive: U+ U- B+ B- R+ R- L+ L- F+ F- EX.
// U turns the Up layer, B the Bottom layer, R, L and F the Right, Left and
// Front layers. "+" is clockwise viewed from outside that face.
//
// # Shuffling
//
// Engine.Shuffle paints every tile with a random color, which usually yields a
// cube that no sequence of turns could reach. Engine.Scramble applies random
// turns instead. Engine.Randomize picks one according to WithShuffleMode.
//
// # Concurrency
//
// Engine is single-threaded. Front-ends that receive requests on several
// goroutines wrap it in an Owner, which funnels every request through one
// goroutine.
package rubikscube
