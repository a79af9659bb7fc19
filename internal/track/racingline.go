package track

// racingLine is a pre-optimised path around the default track, listed
// counter-clockwise like the centerline waypoints. The first and last points
// coincide.
var racingLine = Loop{
	{X: 0.63069109, Y: 2.80611932},
	{X: 0.63367125, Y: 2.69079621},
	{X: 0.6467188, Y: 2.57569291},
	{X: 0.66972231, Y: 2.46183988},
	{X: 0.70251506, Y: 2.35022569},
	{X: 0.74487589, Y: 2.24177514},
	{X: 0.79652923, Y: 2.1373277},
	{X: 0.85714459, Y: 2.03761659},
	{X: 0.92633571, Y: 1.94324872},
	{X: 1.00365975, Y: 1.85468625},
	{X: 1.08861721, Y: 1.77223051},
	{X: 1.1806537, Y: 1.69600972},
	{X: 1.27916562, Y: 1.6259728},
	{X: 1.38351227, Y: 1.56189156},
	{X: 1.4930358, Y: 1.50337335},
	{X: 1.60708637, Y: 1.44988322},
	{X: 1.72504192, Y: 1.40077175},
	{X: 1.84630443, Y: 1.35530161},
	{X: 1.97025603, Y: 1.31266612},
	{X: 2.09617545, Y: 1.2719922},
	{X: 2.2231517, Y: 1.23232374},
	{X: 2.35576976, Y: 1.190681},
	{X: 2.48814156, Y: 1.14836059},
	{X: 2.62010372, Y: 1.1049143},
	{X: 2.75155515, Y: 1.06006668},
	{X: 2.88245693, Y: 1.01371411},
	{X: 3.01283929, Y: 0.96594252},
	{X: 3.14278403, Y: 0.91697795},
	{X: 3.27239538, Y: 0.86710616},
	{X: 3.40178871, Y: 0.81664194},
	{X: 3.52534292, Y: 0.76798582},
	{X: 3.64882806, Y: 0.72098717},
	{X: 3.77225054, Y: 0.67657779},
	{X: 3.89565744, Y: 0.63576533},
	{X: 4.01912628, Y: 0.59935302},
	{X: 4.14273194, Y: 0.56802807},
	{X: 4.26652265, Y: 0.54240254},
	{X: 4.390508, Y: 0.52303129},
	{X: 4.5146562, Y: 0.51041311},
	{X: 4.63889641, Y: 0.50498126},
	{X: 4.76312271, Y: 0.50708933},
	{X: 4.88719857, Y: 0.51699788},
	{X: 5.01096146, Y: 0.53486531},
	{X: 5.13422789, Y: 0.56074489},
	{X: 5.25679889, Y: 0.59458804},
	{X: 5.3784661, Y: 0.63625275},
	{X: 5.49901791, Y: 0.68551547},
	{X: 5.61824556, Y: 0.74208505},
	{X: 5.73594876, Y: 0.8056172},
	{X: 5.85194051, Y: 0.87572882},
	{X: 5.96605088, Y: 0.95201138},
	{X: 6.0781297, Y: 1.03404317},
	{X: 6.18804798, Y: 1.12140005},
	{X: 6.29569809, Y: 1.21366463},
	{X: 6.40099292, Y: 1.31043383},
	{X: 6.50386394, Y: 1.41132475},
	{X: 6.60425847, Y: 1.51597899},
	{X: 6.70213638, Y: 1.62406543},
	{X: 6.79746619, Y: 1.73528168},
	{X: 6.89022097, Y: 1.84935431},
	{X: 6.980374, Y: 1.96603801},
	{X: 7.06789434, Y: 2.08511385},
	{X: 7.15274241, Y: 2.20638682},
	{X: 7.23486553, Y: 2.32968268},
	{X: 7.31419351, Y: 2.4548443},
	{X: 7.39063436, Y: 2.58172754},
	{X: 7.46407004, Y: 2.71019664},
	{X: 7.5343525, Y: 2.84011927},
	{X: 7.60129994, Y: 2.9713612},
	{X: 7.6646937, Y: 3.10378064},
	{X: 7.72427579, Y: 3.2372224},
	{X: 7.77974745, Y: 3.37151184},
	{X: 7.83076905, Y: 3.50644891},
	{X: 7.87696157, Y: 3.64180249},
	{X: 7.91791, Y: 3.77730515},
	{X: 7.9531689, Y: 3.91264892},
	{X: 7.98227014, Y: 4.0474821},
	{X: 8.00473301, Y: 4.18140776},
	{X: 8.02007634, Y: 4.31398396},
	{X: 8.02783246, Y: 4.44472614},
	{X: 8.02756242, Y: 4.57311169},
	{X: 8.01887186, Y: 4.69858671},
	{X: 8.00142678, Y: 4.82057488},
	{X: 7.97496831, Y: 4.93848799},
	{X: 7.9393258, Y: 5.05173771},
	{X: 7.89442733, Y: 5.15974804},
	{X: 7.84030706, Y: 5.26196766},
	{X: 7.77710908, Y: 5.35788145},
	{X: 7.7050874, Y: 5.44702069},
	{X: 7.62460227, Y: 5.52897101},
	{X: 7.536113, Y: 5.60337802},
	{X: 7.44016781, Y: 5.66995014},
	{X: 7.33739134, Y: 5.72845868},
	{X: 7.22847048, Y: 5.77873548},
	{X: 7.11413941, Y: 5.82066844},
	{X: 6.99516423, Y: 5.85419554},
	{X: 6.87232807, Y: 5.8792982},
	{X: 6.74641682, Y: 5.89599457},
	{X: 6.61820582, Y: 5.90433369},
	{X: 6.48844757, Y: 5.90439106},
	{X: 6.35786039, Y: 5.89626615},
	{X: 6.22711782, Y: 5.88008231},
	{X: 6.09683868, Y: 5.85598899},
	{X: 5.96757762, Y: 5.82416624},
	{X: 5.83981608, Y: 5.78483111},
	{X: 5.71395379, Y: 5.73824529},
	{X: 5.59030113, Y: 5.68472331},
	{X: 5.46907261, Y: 5.62464036},
	{X: 5.35038212, Y: 5.55843893},
	{X: 5.23424046, Y: 5.48663315},
	{X: 5.12055594, Y: 5.40981015},
	{X: 5.00913994, Y: 5.32862503},
	{X: 4.89972666, Y: 5.24377382},
	{X: 4.79201344, Y: 5.15593375},
	{X: 4.6857631, Y: 5.06560545},
	{X: 4.5807927, Y: 4.97315917},
	{X: 4.48081878, Y: 4.88243357},
	{X: 4.37959748, Y: 4.79420328},
	{X: 4.27684354, Y: 4.70906838},
	{X: 4.17224941, Y: 4.62769566},
	{X: 4.06553767, Y: 4.55071821},
	{X: 3.95644174, Y: 4.47877854},
	{X: 3.84474817, Y: 4.41244104},
	{X: 3.73031118, Y: 4.35215634},
	{X: 3.61306059, Y: 4.29823493},
	{X: 3.49300409, Y: 4.25082828},
	{X: 3.37022468, Y: 4.20991786},
	{X: 3.24487511, Y: 4.17530971},
	{X: 3.1171707, Y: 4.14663361},
	{X: 2.98738247, Y: 4.12334422},
	{X: 2.85585139, Y: 4.10466958},
	{X: 2.72282052, Y: 4.09005797},
	{X: 2.58852158, Y: 4.07896026},
	{X: 2.45315288, Y: 4.07089104},
	{X: 2.31675601, Y: 4.06579649},
	{X: 2.18425079, Y: 4.05787239},
	{X: 2.05356546, Y: 4.04652377},
	{X: 1.9251617, Y: 4.03105575},
	{X: 1.79950825, Y: 4.01084184},
	{X: 1.67721911, Y: 3.98511327},
	{X: 1.55873527, Y: 3.9534865},
	{X: 1.44466638, Y: 3.91541352},
	{X: 1.33564671, Y: 3.8704324},
	{X: 1.23222981, Y: 3.81830074},
	{X: 1.13519251, Y: 3.7586213},
	{X: 1.04519953, Y: 3.69128277},
	{X: 0.96285535, Y: 3.61637202},
	{X: 0.88870748, Y: 3.5341512},
	{X: 0.82324005, Y: 3.44504611},
	{X: 0.76686864, Y: 3.34963169},
	{X: 0.71993756, Y: 3.24861421},
	{X: 0.68271928, Y: 3.1428114},
	{X: 0.65541543, Y: 3.03313123},
	{X: 0.63815905, Y: 2.92055024},
	{X: 0.63069109, Y: 2.80611932},
}

// RacingLine returns a copy of the built-in racing line.
func RacingLine() Loop {
	return racingLine.Clone()
}
