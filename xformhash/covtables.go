package xformhash

// Covering-radius tables and approx_nori lookup tables, copied verbatim
// (including the variant-specific multiplier applied to each angular
// resolution request) from XformHash.hh: each orientation-grid variant
// searches these tables for the smallest ori_nside whose covering
// radius, times the multiplier, is no coarser than the caller's
// requested angular resolution in degrees.

// quat7CovRad is the 99-entry covering-radius table XformHash_Quat_BCC7
// searches, paired with the 1.35 multiplier.
var quat7CovRad = [99]float64{
	84.09702, 54.20621, 43.98427, 31.58683, 27.58101, 22.72314, 20.42103, 17.58167, 16.12208, 14.44320, 13.40178, 12.15213, 11.49567,
	10.53203, 10.11448, 9.32353, 8.89083, 8.38516, 7.95147, 7.54148, 7.23572, 6.85615, 6.63594, 6.35606, 6.13243, 5.90677,
	5.72515, 5.45705, 5.28864, 5.06335, 4.97668, 4.78774, 4.68602, 4.51794, 4.46654, 4.28316, 4.20425, 4.08935, 3.93284,
	3.84954, 3.74505, 3.70789, 3.58776, 3.51407, 3.45023, 3.41919, 3.28658, 3.24700, 3.16814, 3.08456, 3.02271, 2.96266,
	2.91052, 2.86858, 2.85592, 2.78403, 2.71234, 2.69544, 2.63151, 2.57503, 2.59064, 2.55367, 2.48010, 2.41046, 2.40289,
	2.36125, 2.33856, 2.29815, 2.26979, 2.21838, 2.19458, 2.17881, 2.12842, 2.14030, 2.06959, 2.05272, 2.04950, 2.00790,
	1.96385, 1.96788, 1.91474, 1.90942, 1.90965, 1.85602, 1.83792, 1.81660, 1.80228, 1.77532, 1.76455, 1.72948, 1.72179,
	1.68324, 1.67009, 1.67239, 1.64719, 1.63832, 1.60963, 1.60093, 1.58911,
}

const quat7Multiplier = 1.35

// quat7ZorderCovRad is the 61-entry table XformHash_Quat_BCC7_Zorder
// searches (the first 61 entries of quat7CovRad), with the same 1.35
// multiplier.
var quat7ZorderCovRad = [61]float64{
	84.09702, 54.20621, 43.98427, 31.58683, 27.58101, 22.72314, 20.42103, 17.58167, 16.12208, 14.44320, 13.40178, 12.15213, 11.49567,
	10.53203, 10.11448, 9.32353, 8.89083, 8.38516, 7.95147, 7.54148, 7.23572, 6.85615, 6.63594, 6.35606, 6.13243, 5.90677,
	5.72515, 5.45705, 5.28864, 5.06335, 4.97668, 4.78774, 4.68602, 4.51794, 4.46654, 4.28316, 4.20425, 4.08935, 3.93284,
	3.84954, 3.74505, 3.70789, 3.58776, 3.51407, 3.45023, 3.41919, 3.28658, 3.24700, 3.16814, 3.08456, 3.02271, 2.96266,
	2.91052, 2.86858, 2.85592, 2.78403, 2.71234, 2.69544, 2.63151, 2.57503, 2.59064,
}

// bt24CovRad is the 64-entry covering-radius table shared by
// XformHash_bt24_BCC3(_Zorder) and XformHash_bt24_BCC6, paired with a
// per-variant multiplier (1.01 for BCC3, 1.45 for BCC6).
var bt24CovRad = [64]float64{
	49.66580, 25.99805, 17.48845, 13.15078, 10.48384, 8.76800, 7.48210, 6.56491, 5.84498, 5.27430, 4.78793, 4.35932,
	4.04326, 3.76735, 3.51456, 3.29493, 3.09656, 2.92407, 2.75865, 2.62890, 2.51173, 2.39665, 2.28840, 2.19235,
	2.09949, 2.01564, 1.94154, 1.87351, 1.80926, 1.75516, 1.69866, 1.64672, 1.59025, 1.54589, 1.50077, 1.46216,
	1.41758, 1.38146, 1.35363, 1.31630, 1.28212, 1.24864, 1.21919, 1.20169, 1.17003, 1.14951, 1.11853, 1.09436,
	1.07381, 1.05223, 1.02896, 1.00747, 0.99457, 0.97719, 0.95703, 0.93588, 0.92061, 0.90475, 0.89253, 0.87480,
	0.86141, 0.84846, 0.83677, 0.82164,
}

const bt24BCC3Multiplier = 1.01
const bt24BCC6Multiplier = 1.45

// bt24CubicCovRad is the 64-entry covering-radius table
// XformHash_bt24_Cubic_Zorder searches, with a 1.01 multiplier.
var bt24CubicCovRad = [64]float64{
	62.71876, 39.26276, 26.61019, 20.06358, 16.20437, 13.45733, 11.58808, 10.10294, 9.00817, 8.12656, 7.37295,
	6.74856, 6.23527, 5.77090, 5.38323, 5.07305, 4.76208, 4.50967, 4.25113, 4.04065, 3.88241, 3.68300,
	3.53376, 3.36904, 3.22018, 3.13437, 2.99565, 2.89568, 2.78295, 2.70731, 2.61762, 2.52821, 2.45660,
	2.37996, 2.31057, 2.25207, 2.18726, 2.13725, 2.08080, 2.02489, 1.97903, 1.92123, 1.88348, 1.83759,
	1.79917, 1.76493, 1.72408, 1.68516, 1.64581, 1.62274, 1.57909, 1.55846, 1.52323, 1.50846, 1.47719,
	1.44242, 1.42865, 1.39023, 1.37749, 1.34783, 1.32588, 1.31959, 1.29872, 1.26796,
}

const bt24CubicMultiplier = 1.01

// quatgridCubicCovRad reuses the bt24 table, with no multiplier applied
// (XformHash_Quatgrid_Cubic compares covrad directly to ang_resl).
var quatgridCubicCovRad = bt24CovRad

// quat7ApproxNori is the 62-entry approx_nori table shared by
// XformHash_Quat_BCC7 and XformHash_Quat_BCC7_Zorder, indexed by
// ori_nside-2.
var quat7ApproxNori = [62]uint64{
	0, 53, 134, 189, 436, 622, 899, 1606, 1996, 2303, 3410, 4502, 5510, 6284, 8285, 10098, 11634, 13352,
	16065, 18538, 21205, 23953, 28212, 31593, 35653, 38748, 43980, 48801, 54661, 58271, 65655, 72114, 79038, 84326, 93094,
	101191, 109680, 116143, 127688, 137387, 146325, 155608, 168954, 180147, 192798, 202438, 218861, 231649, 246830, 257380, 275655, 292355,
	309321, 321798, 343505, 362585, 381254, 396135, 420820, 442324, 464576, 480460,
}

// bt24BCC6ApproxNori is the 18-entry approx_nori table
// XformHash_bt24_BCC6 searches, indexed by ori_nside-1.
var bt24BCC6ApproxNori = [18]uint64{
	192, 648, 1521, 2855, 4990, 7917, 11682, 16693, 23011, 30471, 39504, 50464, 62849, 77169, 93903, 112604, 133352, 157103,
}

// oriNsideForResolution finds the smallest ori_nside (1-based) such
// that covrad[ori_nside-1]*multiplier <= angResl, matching the
// while-loop search XformHash.hh performs for every variant's
// constructor. The search stops at maxNside, or at len(covrad)+1 once
// every table entry has been tried, whichever comes first.
func oriNsideForResolution(covrad []float64, multiplier, angResl float64, maxNside int) int {
	oriNside := 1
	for oriNside-1 < len(covrad) && covrad[oriNside-1]*multiplier > angResl && oriNside < maxNside {
		oriNside++
	}
	return oriNside
}
