package models

// matrix3 is a row-major 3×3 matrix.
type matrix3 [3][3]float64

// apply multiplies the matrix with the triplet.
func (m matrix3) apply(v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// BT.2100 ICtCp matrices, specified as integer coefficients over 4096.
var (
	matrixRGBToLMS = matrix3{
		{1688.0 / 4096.0, 2146.0 / 4096.0, 262.0 / 4096.0},
		{683.0 / 4096.0, 2951.0 / 4096.0, 462.0 / 4096.0},
		{99.0 / 4096.0, 309.0 / 4096.0, 3688.0 / 4096.0},
	}
	matrixLMSToRGB = matrix3{
		{3.4366066943330784, -2.50645211865627, 0.06984542432319148},
		{-0.7913295555989287, 1.9836004517922907, -0.192270896193362},
		{-0.025949899690592672, -0.09891371471172644, 1.1248636144023192},
	}
	matrixLMSPToICtCp = matrix3{
		{2048.0 / 4096.0, 2048.0 / 4096.0, 0},
		{6610.0 / 4096.0, -13613.0 / 4096.0, 7003.0 / 4096.0},
		{17933.0 / 4096.0, -17390.0 / 4096.0, -543.0 / 4096.0},
	}
	matrixICtCpToLMSP = matrix3{
		{1, 0.008609037037932756, 0.11102962500302596},
		{1, -0.008609037037932756, -0.11102962500302596},
		{1, 0.5600313357106791, -0.32062717498731885},
	}
)

// RGBToICtCp converts linear BT.2020 RGB to the BT.2100 ICtCp opponent
// representation: RGB is crosstalked into LMS, PQ-encoded against the peak
// luminance and rotated into intensity plus two chroma axes.
func RGBToICtCp(rgb [3]float64, peakLuminance float64) [3]float64 {
	lms := matrixRGBToLMS.apply(rgb)
	var lmsP [3]float64
	for i, v := range lms {
		lmsP[i] = EotfInverseST2084(v, peakLuminance)
	}

	return matrixLMSPToICtCp.apply(lmsP)
}

// ICtCpToRGB converts BT.2100 ICtCp back to linear BT.2020 RGB.
func ICtCpToRGB(ictcp [3]float64, peakLuminance float64) [3]float64 {
	lmsP := matrixICtCpToLMSP.apply(ictcp)
	var lms [3]float64
	for i, v := range lmsP {
		lms[i] = EotfST2084(v, peakLuminance)
	}

	return matrixLMSToRGB.apply(lms)
}
