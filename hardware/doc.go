// Package hardware defines the narrow capabilities through which the
// navigation core reaches the robot: distance sensors, a heading sensor and
// a differential-drive actuator.
//
// Drivers for pins, timers, PWM and sensor registers live outside this
// module. They only need to satisfy these interfaces. Two small adapters
// are provided on top of them:
//
//   - MedianSampler turns a noisy single-shot distance sensor into one that
//     takes a short burst of samples, drops invalid ones and returns the
//     median.
//   - OffsetCompass adds software zeroing (ResetOffset) to a raw heading
//     source that cannot be reset in hardware.
//
// Readings:
//
//   - Distances are centimetres. NoReading (0) means "no valid echo" and
//     must never be read as "wall touching the sensor".
//   - Only values in [MinValidCM, MaxValidCM] are trusted.
//   - Headings are degrees in [0, 360).
//   - Motor speeds are percentages in [-100, 100]; the sign selects the
//     direction and 0 stops the motor.
package hardware
