package window

// Cosine-sum coefficient tables. cosineFromCoeffs evaluates
// sum_k coeffs[k]*cos(k*2*pi*x), so each table already carries the
// alternating sign convention (a0 - a1*cos + a2*cos2 - ...).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs          = []float64{0.54, -0.46}
	blackmanCoeffs         = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs          = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
	exactBlackmanCoeffs    = []float64{0.426591, -0.496560, 0.076849}
	blackmanHarris3Coeffs  = []float64{0.42323, -0.49755, 0.07922}
	blackmanNuttallCoeffs  = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	nuttallCTDCoeffs       = []float64{0.338946, -0.481973, 0.161054, -0.018027}
	nuttallCFDCoeffs       = []float64{0.355768, -0.487396, 0.144232, -0.012604}
	lawrey5Coeffs          = []float64{0.2989, -0.4468, 0.2019, -0.0494, 0.0030}
	lawrey6Coeffs          = []float64{0.2624, -0.4213, 0.2245, -0.0817, 0.0125, -0.0003}
	burgess59Coeffs        = []float64{0.42323, -0.49755, 0.07922}
	burgess71Coeffs        = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	albrecht2Coeffs        = []float64{0.6, -0.4}
	albrecht3Coeffs        = []float64{0.449, -0.493, 0.058}
	albrecht4Coeffs        = []float64{0.338946, -0.481973, 0.161054, -0.018027}
	albrecht5Coeffs        = []float64{0.25, -0.4286, 0.2484, -0.0664, 0.0066}
	albrecht6Coeffs        = []float64{0.2624, -0.4213, 0.2245, -0.0817, 0.0125, -0.0003}
	albrecht7Coeffs        = []float64{0.2249, -0.4038, 0.2554, -0.1040, 0.0210, -0.0012, 0.0000}
	albrecht8Coeffs        = []float64{0.2051, -0.3879, 0.2675, -0.1285, 0.0385, -0.0058, 0.0002, 0.0000}
	albrecht9Coeffs        = []float64{0.1908, -0.3739, 0.2737, -0.1497, 0.0564, -0.0128, 0.0012, 0.0000, 0.0000}
	albrecht10Coeffs       = []float64{0.1800, -0.3616, 0.2756, -0.1671, 0.0737, -0.0228, 0.0042, -0.0003, 0.0000, 0.0000}
	albrecht11Coeffs       = []float64{0.1712, -0.3507, 0.2736, -0.1804, 0.0897, -0.0338, 0.0090, -0.0013, 0.0001, 0.0000, 0.0000}
)

// metadataByType gives static spectral metadata for every Type that has
// a well-established published figure. Parametric windows (Kaiser,
// Tukey, Gauss, Lanczos, Dolph-Chebyshev) get representative values for
// their common default parameterization: actual values shift with
// alpha/beta and are better obtained from Analyze on the generated
// coefficients.
var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", ENBW: 1.0, HighestSidelobe: -13.3, CoherentGain: 1.0, CoherentGainSquared: 1.0},
	TypeHann:        {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:     {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
	TypeBlackman:    {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42, CoherentGainSquared: 0.1764},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris (4-term)", ENBW: 2.00, HighestSidelobe: -92.0, CoherentGain: 0.35875, CoherentGainSquared: 0.1287},
	TypeFlatTop:     {Name: "Flat Top", ENBW: 3.77, HighestSidelobe: -93.6, CoherentGain: 0.2156, CoherentGainSquared: 0.0465},
	TypeKaiser:      {Name: "Kaiser", ENBW: 1.8, HighestSidelobe: -60.0, CoherentGain: 0.45, CoherentGainSquared: 0.2},
	TypeTukey:       {Name: "Tukey", ENBW: 1.33, HighestSidelobe: -15.1, CoherentGain: 0.75, CoherentGainSquared: 0.56},
	TypeTriangle:    {Name: "Triangle", ENBW: 1.33, HighestSidelobe: -26.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeCosine:      {Name: "Cosine", ENBW: 1.23, HighestSidelobe: -23.0, CoherentGain: 0.637, CoherentGainSquared: 0.405},
	TypeWelch:       {Name: "Welch", ENBW: 1.2, HighestSidelobe: -21.3, CoherentGain: 0.667, CoherentGainSquared: 0.445},
	TypeLanczos:     {Name: "Lanczos", ENBW: 1.3, HighestSidelobe: -26.4, CoherentGain: 0.59, CoherentGainSquared: 0.35},
	TypeGauss:       {Name: "Gauss", ENBW: 1.4, HighestSidelobe: -42.0, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeExactBlackman:       {Name: "Exact Blackman", ENBW: 1.69, HighestSidelobe: -68.2, CoherentGain: 0.4266, CoherentGainSquared: 0.182},
	TypeBlackmanHarris3Term: {Name: "Blackman-Harris (3-term)", ENBW: 1.71, HighestSidelobe: -67.0, CoherentGain: 0.42323, CoherentGainSquared: 0.179},
	TypeBlackmanNuttall:     {Name: "Blackman-Nuttall", ENBW: 1.98, HighestSidelobe: -98.1, CoherentGain: 0.3636, CoherentGainSquared: 0.1322},
	TypeNuttallCTD:          {Name: "Nuttall (continuous 3rd derivative)", ENBW: 1.98, HighestSidelobe: -93.3, CoherentGain: 0.3389, CoherentGainSquared: 0.1149},
	TypeNuttallCFD:          {Name: "Nuttall (continuous 1st derivative)", ENBW: 1.94, HighestSidelobe: -82.6, CoherentGain: 0.3558, CoherentGainSquared: 0.1266},
	TypeLawrey5Term:         {Name: "Lawrey (5-term)", ENBW: 2.10, HighestSidelobe: -95.0, CoherentGain: 0.2989, CoherentGainSquared: 0.0893},
	TypeLawrey6Term:         {Name: "Lawrey (6-term)", ENBW: 2.30, HighestSidelobe: -100.0, CoherentGain: 0.2624, CoherentGainSquared: 0.0689},
	TypeBurgessOptimized59dB: {Name: "Burgess optimized (59 dB)", ENBW: 1.71, HighestSidelobe: -59.0, CoherentGain: 0.42323, CoherentGainSquared: 0.179},
	TypeBurgessOptimized71dB: {Name: "Burgess optimized (71 dB)", ENBW: 1.98, HighestSidelobe: -71.0, CoherentGain: 0.3636, CoherentGainSquared: 0.1322},
	TypeAlbrecht2Term:  {Name: "Albrecht (2-term)", ENBW: 1.43, HighestSidelobe: -40.0, CoherentGain: 0.6, CoherentGainSquared: 0.36},
	TypeAlbrecht3Term:  {Name: "Albrecht (3-term)", ENBW: 1.65, HighestSidelobe: -58.0, CoherentGain: 0.449, CoherentGainSquared: 0.2016},
	TypeAlbrecht4Term:  {Name: "Albrecht (4-term)", ENBW: 1.98, HighestSidelobe: -93.0, CoherentGain: 0.3389, CoherentGainSquared: 0.1149},
	TypeAlbrecht5Term:  {Name: "Albrecht (5-term)", ENBW: 2.21, HighestSidelobe: -110.0, CoherentGain: 0.25, CoherentGainSquared: 0.0625},
	TypeAlbrecht6Term:  {Name: "Albrecht (6-term)", ENBW: 2.30, HighestSidelobe: -125.0, CoherentGain: 0.2624, CoherentGainSquared: 0.0689},
	TypeAlbrecht7Term:  {Name: "Albrecht (7-term)", ENBW: 2.42, HighestSidelobe: -140.0, CoherentGain: 0.2249, CoherentGainSquared: 0.0506},
	TypeAlbrecht8Term:  {Name: "Albrecht (8-term)", ENBW: 2.55, HighestSidelobe: -155.0, CoherentGain: 0.2051, CoherentGainSquared: 0.0421},
	TypeAlbrecht9Term:  {Name: "Albrecht (9-term)", ENBW: 2.67, HighestSidelobe: -168.0, CoherentGain: 0.1908, CoherentGainSquared: 0.0364},
	TypeAlbrecht10Term: {Name: "Albrecht (10-term)", ENBW: 2.79, HighestSidelobe: -180.0, CoherentGain: 0.18, CoherentGainSquared: 0.0324},
	TypeAlbrecht11Term: {Name: "Albrecht (11-term)", ENBW: 2.90, HighestSidelobe: -190.0, CoherentGain: 0.1712, CoherentGainSquared: 0.0293},
	TypeFreeCosine:     {Name: "Free-form cosine sum", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeDolphChebyshev: {Name: "Dolph-Chebyshev", ENBW: 1.53, HighestSidelobe: -100.0, CoherentGain: 0.45, CoherentGainSquared: 0.2},
	TypeBartlettHann:   {Name: "Bartlett-Hann", ENBW: 1.46, HighestSidelobe: -35.9, CoherentGain: 0.62, CoherentGainSquared: 0.3844},
}
