//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package vole implements the prover (sender) side of a
// VOLE-in-the-head protocol. The sender generates, without any
// interaction, a vector oblivious linear evaluation (VOLE)
// correlation over GF(2^128) that a verifier later challenges and
// partially opens:
//
//	q[j][i] = u[j] * Delta[i] + v[j][i]
//
// where the sender holds the bit vector u and the matrix v, and the
// verifier learns q after choosing the per-repetition challenges
// Delta[i].
//
// The sender runs num_repetitions independent all-but-one vector
// commitments over q = 2^k leaves, where k is the bit width of the
// small field embedded into GF(2^128). For each repetition it
// expands every leaf x into a bit vector r_x and computes
//
//	u_i = r_0 ^ r_1 ^ ... ^ r_{q-1}
//	v_i = sum_{x>0} embed(x) * r_x
//
// A verifier that learns all leaves except leaf Delta_i recomputes
// sum_x embed(x ^ Delta_i) * r_x = u_i * Delta_i + v_i, since the term
// of the hidden leaf vanishes. Correction values make all
// repetitions share one vector u.
//
// The protocol runs as a strict state machine:
//
//	sender := vole.NewSender(config, vc, gf128.GF2p8, 128, 16)
//	commitment, err := sender.CommitRandom()
//	if err != nil { ... }
//	response := sender.ConsistencyCheckRespond(points)
//	decommitment := sender.Decommit(deltas)
//	u, v := sender.Output()
//
// Calling the functions out of order, or with challenges whose
// lengths do not match num_repetitions, is a programming error and
// panics.
package vole
