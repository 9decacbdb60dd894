package grpcserver

// UserServiceName is the name the health service reports the user service under
const UserServiceName = "calorie_counter.UserService"
