// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

// reciprocalFactorial holds 1/n! to DDouble precision for n = 2..27, the
// range needed by sin_kernel (up to z^27), cos_kernel (up to z^26) and
// sinh_kernel (up to x^17). The reference C++ library keeps this table in
// a header, taylor.h, that was not part of the retrieved source; the
// values below were regenerated from the defining property 1/n! split
// into an exact non-overlapping (hi, lo) pair.
var reciprocalFactorial = [...]DDouble{
	2:  {0.5, 0.0},
	3:  {0.16666666666666666, 9.25185853854297e-18},
	4:  {0.041666666666666664, 2.3129646346357427e-18},
	5:  {0.008333333333333333, 1.1564823173178714e-19},
	6:  {0.001388888888888889, -5.300543954373577e-20},
	7:  {0.0001984126984126984, 1.7209558293420705e-22},
	8:  {2.48015873015873e-05, 2.1511947866775882e-23},
	9:  {2.7557319223985893e-06, -1.858393274046472e-22},
	10: {2.755731922398589e-07, 2.3767714622250297e-23},
	11: {2.505210838544172e-08, -1.448814070935912e-24},
	12: {2.08767569878681e-09, -1.20734505911326e-25},
	13: {1.6059043836821613e-10, 1.2585294588752098e-26},
	14: {1.1470745597729725e-11, 2.0655512752830745e-28},
	15: {7.647163731819816e-13, 7.03872877733453e-30},
	16: {4.779477332387385e-14, 4.399205485834081e-31},
	17: {2.8114572543455206e-15, 1.6508842730861433e-31},
	18: {1.5619206968586225e-16, 1.1910679660273754e-32},
	19: {8.22063524662433e-18, 2.2141894119604265e-34},
	20: {4.110317623312165e-19, 1.4412973378659527e-36},
	21: {1.9572941063391263e-20, -1.3643503830087908e-36},
	22: {8.896791392450574e-22, -7.911402614872376e-38},
	23: {3.868170170630684e-23, -8.843177655482344e-40},
	24: {1.6117375710961184e-24, -3.6846573564509766e-41},
	25: {6.446950284384474e-26, -1.9330404233703465e-42},
	26: {2.4795962632247976e-27, -1.2953730964765229e-43},
	27: {9.183689863795546e-29, 1.4303150396787322e-45},
}

// reciprocalFactorialAt returns 1/n! for 2 <= n <= 27.
func reciprocalFactorialAt(n int) DDouble { return reciprocalFactorial[n] }
