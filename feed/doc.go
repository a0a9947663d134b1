// Package feed holds the state of the vertical video reel: the items fetched
// once from the catalog, the cursor over them, and the mapping from wheel and
// touch gestures to cursor moves.
//
// A Reel never talks to the network after Load. Playback is delegated to a
// Player, which is told to play the active item and pause the rest every time
// the cursor changes.
package feed
