// Package lander implements the rocket lander game: input-driven movement,
// collision outcomes with delayed scene transitions, oscillating obstacles,
// persistent level music and the scene manager tying them together.
//
// Like every game package it contains no Bubble Tea code. Hosts drive it via
// Game.Step once per tick and draw it with Game.Render.
package lander
