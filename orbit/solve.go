package orbit

import "github.com/Becheler/orca/orcaerr"

const opSolve = "orbit.solveNode"

// exactDiv divides x by d, panicking via orcaerr.Invariant if the division
// is not exact. Every division below is exact by construction whenever the
// f_k sums were accumulated over a well-formed simple graph; a remainder
// means either a malformed input slipped past parse/graph validation or the
// enumerator above has a bug.
func exactDiv(orbitIdx int, x, d int64) int64 {
	if x%d != 0 {
		orcaerr.Invariant(opSolve, orcaerr.ErrNonExactDivision, "orbit %d: %d is not divisible by %d", orbitIdx, x, d)
	}
	return x / d
}

// solveNode back-substitutes the 57 f_k sums into orbits 71 down to 15,
// given orbits[0..14] and orbits[72] already filled in. The equations are
// transcribed verbatim from the reference implementation's triangular
// system (count_orbits, orbit 72 down to 15): each line divides out the
// over-counting of already-solved, higher-numbered orbits from the raw f_k
// sum for the orbit being solved.
func solveNode(orbits *[73]int64, f fSums) {
	o := orbits // alias for readability, matches the formulas below 1:1

	o[71] = exactDiv(71, f.get(71)-12*o[72], 2)
	o[70] = f.get(70) - 4*o[72]
	o[69] = exactDiv(69, f.get(69)-2*o[71], 4)
	o[68] = f.get(68) - 2*o[71]
	o[67] = f.get(67) - 12*o[72] - 4*o[71]
	o[66] = f.get(66) - 12*o[72] - 2*o[71] - 3*o[70]
	o[65] = exactDiv(65, f.get(65)-3*o[70], 2)
	o[64] = f.get(64) - 2*o[71] - 4*o[69] - o[68]
	o[63] = f.get(63) - 3*o[70] - 2*o[68]
	o[62] = exactDiv(62, f.get(62)-o[68], 2)
	o[61] = exactDiv(61, f.get(61)-4*o[71]-8*o[69]-2*o[67], 2)
	o[60] = f.get(60) - 4*o[71] - 2*o[68] - 2*o[67]
	o[59] = f.get(59) - 6*o[70] - 2*o[68] - 4*o[65]
	o[58] = f.get(58) - 4*o[72] - 2*o[71] - o[67]
	o[57] = f.get(57) - 12*o[72] - 4*o[71] - 3*o[70] - o[67] - 2*o[66]
	o[56] = exactDiv(56, f.get(56)-2*o[65], 3)
	o[55] = exactDiv(55, f.get(55)-2*o[71]-2*o[67], 3)
	o[54] = exactDiv(54, f.get(54)-3*o[70]-o[66]-2*o[65], 2)
	o[53] = f.get(53) - 2*o[68] - 2*o[64] - 2*o[63]
	o[52] = exactDiv(52, f.get(52)-2*o[66]-2*o[64]-o[59], 2)
	o[51] = f.get(51) - 2*o[68] - 2*o[63] - 4*o[62]
	o[50] = exactDiv(50, f.get(50)-o[68]-2*o[63], 3)
	o[49] = exactDiv(49, f.get(49)-o[68]-o[64]-2*o[62], 2)
	o[48] = f.get(48) - 4*o[71] - 8*o[69] - 2*o[68] - 2*o[67] - 2*o[64] - 2*o[61] - o[60]
	o[47] = f.get(47) - 3*o[70] - 2*o[68] - o[66] - o[63] - o[60]
	o[46] = f.get(46) - 3*o[70] - 2*o[68] - 2*o[65] - o[63] - o[59]
	o[45] = f.get(45) - 2*o[65] - 2*o[62] - 3*o[56]
	o[44] = exactDiv(44, f.get(44)-o[67]-2*o[61], 4)
	o[43] = exactDiv(43, f.get(43)-2*o[66]-o[60]-o[59], 2)
	o[42] = f.get(42) - 2*o[71] - 4*o[69] - 2*o[67] - 2*o[61] - 3*o[55]
	o[41] = f.get(41) - 2*o[71] - o[68] - 2*o[67] - o[60] - 3*o[55]
	o[40] = f.get(40) - 6*o[70] - 2*o[68] - 2*o[66] - 4*o[65] - o[60] - o[59] - 4*o[54]
	o[39] = exactDiv(39, f.get(39)-4*o[65]-o[59]-6*o[56], 2)
	o[38] = f.get(38) - o[68] - o[64] - 2*o[63] - o[53] - 3*o[50]
	o[37] = f.get(37) - 2*o[68] - 2*o[64] - 2*o[63] - 4*o[62] - o[53] - o[51] - 4*o[49]
	o[36] = f.get(36) - o[68] - 2*o[63] - 2*o[62] - o[51] - 3*o[50]
	o[35] = exactDiv(35, f.get(35)-o[59]-2*o[52]-2*o[45], 2)
	o[34] = exactDiv(34, f.get(34)-o[59]-2*o[52]-o[51], 2)
	o[33] = exactDiv(33, f.get(33)-o[67]-2*o[61]-3*o[58]-4*o[44]-2*o[42], 2)
	o[32] = exactDiv(32, f.get(32)-2*o[66]-o[60]-o[59]-2*o[57]-2*o[43]-2*o[41]-o[40], 2)
	o[31] = f.get(31) - 2*o[65] - o[59] - 3*o[56] - o[43] - 2*o[39]
	o[30] = f.get(30) - o[67] - o[63] - 2*o[61] - o[53] - 4*o[44]
	o[29] = f.get(29) - 2*o[66] - 2*o[64] - o[60] - o[59] - o[53] - 2*o[52] - 2*o[43]
	o[28] = f.get(28) - 2*o[65] - 2*o[62] - o[59] - o[51] - o[43]
	o[27] = exactDiv(27, f.get(27)-o[59]-o[51]-2*o[45], 2)
	o[26] = f.get(26) - 2*o[67] - 2*o[63] - 2*o[61] - 6*o[58] - o[53] - 2*o[47] - 2*o[42]
	o[25] = exactDiv(25, f.get(25)-2*o[66]-2*o[64]-o[59]-2*o[57]-2*o[52]-o[48]-o[40], 2)
	o[24] = f.get(24) - 4*o[65] - 4*o[62] - o[59] - 6*o[56] - o[51] - 2*o[45] - 2*o[39]
	o[23] = exactDiv(23, f.get(23)-o[55]-o[42]-2*o[33], 4)
	o[22] = exactDiv(22, f.get(22)-2*o[54]-o[40]-o[39]-o[32]-2*o[31], 3)
	o[21] = f.get(21) - 3*o[55] - 3*o[50] - 2*o[42] - 2*o[38] - 2*o[33]
	o[20] = f.get(20) - 2*o[54] - 2*o[49] - o[40] - o[37] - o[32]
	o[19] = f.get(19) - 4*o[54] - 4*o[49] - o[40] - 2*o[39] - o[37] - 2*o[35] - 2*o[31]
	o[18] = exactDiv(18, f.get(18)-o[59]-o[51]-2*o[46]-2*o[45]-2*o[36]-2*o[27]-o[24], 2)
	o[17] = exactDiv(17, f.get(17)-o[60]-o[53]-o[51]-o[48]-o[37]-2*o[34]-2*o[30], 2)
	o[16] = f.get(16) - o[59] - 2*o[52] - o[51] - 2*o[46] - 2*o[36] - 2*o[34] - o[29]
	o[15] = f.get(15) - o[59] - 2*o[52] - o[51] - 2*o[45] - 2*o[35] - 2*o[34] - 2*o[27]
}
