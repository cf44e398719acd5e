package metrics

const (
	TrackDeltaFreqH = "The current PI correction term in Hz"
	TrackDeltaFreqN = "gridpll_track_delta_freq_hz"
	TrackFreqH      = "The current frequency estimate in Hz"
	TrackFreqN      = "gridpll_track_freq_hz"
	TrackPhaseH     = "The current oscillator phase in turns"
	TrackPhaseN     = "gridpll_track_phase_turns"
	TrackSamplesH   = "The total number of input samples processed"
	TrackSamplesN   = "gridpll_track_samples"
)
